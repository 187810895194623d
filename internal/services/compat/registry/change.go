package registry

// ChangeID identifies a compatibility change. IDs are globally unique, stable
// across releases, and never reused.
type ChangeID uint64

// UngatedSDK marks a change with no target SDK gate.
const UngatedSDK int32 = -1

// Change is one registered compatibility change definition.
type Change struct {
	// ID is the primary key. Immutable once assigned.
	ID ChangeID

	// Name is a human-readable identifier used for lookup and diagnostics.
	// Unique under correct configuration, but uniqueness is not enforced.
	Name string

	// EnableAfterTargetSDK gates the change when >= 0: only apps whose
	// target SDK is strictly greater than this value get the change.
	// UngatedSDK means no gate.
	EnableAfterTargetSDK int32

	// Disabled turns the change off for every app regardless of the gate.
	Disabled bool

	// Description is free-form and has no semantic effect.
	Description string
}

// Gated reports whether the change carries a target SDK gate.
func (c Change) Gated() bool {
	return c.EnableAfterTargetSDK >= 0
}

// AppInfo describes the app a query resolves against. Supplied per call and
// never stored.
type AppInfo struct {
	PackageName      string
	TargetSDKVersion int32
}

// Override is an explicit per-package enablement directive.
type Override struct {
	ChangeID    ChangeID
	PackageName string
	Enabled     bool
}

type overrideKey struct {
	id  ChangeID
	pkg string
}
