// Package errors provides structured domain errors with gRPC status mapping.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Change validation errors
	CodeChangeIDRequired  Code = "CHANGE_ID_REQUIRED"
	CodeChangeNameEmpty   Code = "CHANGE_NAME_EMPTY"
	CodeChangeGateInvalid Code = "CHANGE_GATE_INVALID"

	// App info validation errors
	CodePackageNameEmpty Code = "PACKAGE_NAME_EMPTY"
	CodeTargetSdkInvalid Code = "TARGET_SDK_INVALID"

	// List validation errors
	CodeFilterInvalid    Code = "FILTER_INVALID"
	CodePageTokenInvalid Code = "PAGE_TOKEN_INVALID"

	// Admin grant errors
	CodeGrantMissing          Code = "ADMIN_GRANT_MISSING"
	CodeGrantInvalid          Code = "ADMIN_GRANT_INVALID"
	CodeGrantExpired          Code = "ADMIN_GRANT_EXPIRED"
	CodeOverridesNotPermitted Code = "OVERRIDES_NOT_PERMITTED"

	// Storage errors
	CodeStorageFailure Code = "STORAGE_FAILURE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeChangeIDRequired,
		CodeChangeNameEmpty,
		CodeChangeGateInvalid,
		CodePackageNameEmpty,
		CodeTargetSdkInvalid,
		CodeFilterInvalid,
		CodePageTokenInvalid:
		return codes.InvalidArgument

	// Unauthenticated - grant credentials missing or unusable
	case CodeGrantMissing,
		CodeGrantInvalid,
		CodeGrantExpired:
		return codes.Unauthenticated

	// PermissionDenied - build policy forbids the mutation
	case CodeOverridesNotPermitted:
		return codes.PermissionDenied

	default:
		return codes.Internal
	}
}
