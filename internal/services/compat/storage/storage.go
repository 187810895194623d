// Package storage defines persistence contracts for compat service state.
//
// Only overrides are persisted. Change definitions come from config documents
// and runtime registration; the registry rebuilds them on every boot.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested override record is missing.
var ErrNotFound = errors.New("record not found")

// Override stores one persisted per-package enablement directive.
type Override struct {
	ChangeID    uint64
	PackageName string
	Enabled     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OverrideStore persists per-package overrides across restarts.
type OverrideStore interface {
	// PutOverride upserts the override for (ChangeID, PackageName).
	PutOverride(ctx context.Context, override Override) error

	// DeleteOverride removes the override for the pair. Returns ErrNotFound
	// when no such record exists.
	DeleteOverride(ctx context.Context, changeID uint64, packageName string) error

	// ListOverrides returns every persisted override, ordered by change id
	// then package name. Used to hydrate the registry at boot.
	ListOverrides(ctx context.Context) ([]Override, error)
}
