package errors

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorMatchesByCode(t *testing.T) {
	base := New(CodeChangeNameEmpty, "change name is required")
	wrapped := fmt.Errorf("put change: %w", base)

	if !errors.Is(wrapped, New(CodeChangeNameEmpty, "other message")) {
		t.Fatal("expected errors with the same code to match")
	}
	if errors.Is(wrapped, New(CodePackageNameEmpty, "change name is required")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(CodeStorageFailure, "persist override", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable")
	}
	if err.Error() != "persist override" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "persist override")
	}
}

func TestToGRPCStatusAttachesErrorInfo(t *testing.T) {
	err := WithMetadata(CodeGrantExpired, "admin grant expired", map[string]string{
		"package_name": "com.example.app",
	})

	st, ok := status.FromError(err.ToGRPCStatus())
	if !ok {
		t.Fatal("expected a gRPC status error")
	}
	if st.Code() != codes.Unauthenticated {
		t.Fatalf("status code = %v, want %v", st.Code(), codes.Unauthenticated)
	}

	var info *errdetails.ErrorInfo
	for _, detail := range st.Details() {
		if ei, ok := detail.(*errdetails.ErrorInfo); ok {
			info = ei
		}
	}
	if info == nil {
		t.Fatal("expected ErrorInfo detail")
	}
	if info.GetReason() != string(CodeGrantExpired) {
		t.Fatalf("reason = %q, want %q", info.GetReason(), CodeGrantExpired)
	}
	if info.GetDomain() != Domain {
		t.Fatalf("domain = %q, want %q", info.GetDomain(), Domain)
	}
	if info.GetMetadata()["package_name"] != "com.example.app" {
		t.Fatalf("metadata = %v, want package_name entry", info.GetMetadata())
	}
}

func TestHandleErrorConvertsDomainErrors(t *testing.T) {
	err := HandleError(New(CodePackageNameEmpty, "package name is required"))

	st, ok := status.FromError(err)
	if !ok {
		t.Fatal("expected a gRPC status error")
	}
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("status code = %v, want %v", st.Code(), codes.InvalidArgument)
	}
}

func TestHandleErrorMasksUnknownErrors(t *testing.T) {
	err := HandleError(fmt.Errorf("disk on fire"))

	st, ok := status.FromError(err)
	if !ok {
		t.Fatal("expected a gRPC status error")
	}
	if st.Code() != codes.Internal {
		t.Fatalf("status code = %v, want %v", st.Code(), codes.Internal)
	}
	if st.Message() == "disk on fire" {
		t.Fatal("expected the internal error message to be masked")
	}
}

func TestHandleErrorPassesNil(t *testing.T) {
	if err := HandleError(nil); err != nil {
		t.Fatalf("HandleError(nil) = %v, want nil", err)
	}
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(CodeFilterInvalid, "bad filter"))

	if got := GetCode(wrapped); got != CodeFilterInvalid {
		t.Fatalf("GetCode() = %v, want %v", got, CodeFilterInvalid)
	}
	if got := GetCode(fmt.Errorf("plain")); got != CodeUnknown {
		t.Fatalf("GetCode() = %v, want %v", got, CodeUnknown)
	}
	if !IsCode(wrapped, CodeFilterInvalid) {
		t.Fatal("IsCode() = false, want true")
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	cases := []struct {
		code Code
		want codes.Code
	}{
		{CodeChangeIDRequired, codes.InvalidArgument},
		{CodeChangeNameEmpty, codes.InvalidArgument},
		{CodeChangeGateInvalid, codes.InvalidArgument},
		{CodePackageNameEmpty, codes.InvalidArgument},
		{CodeTargetSdkInvalid, codes.InvalidArgument},
		{CodeFilterInvalid, codes.InvalidArgument},
		{CodePageTokenInvalid, codes.InvalidArgument},
		{CodeGrantMissing, codes.Unauthenticated},
		{CodeGrantInvalid, codes.Unauthenticated},
		{CodeGrantExpired, codes.Unauthenticated},
		{CodeOverridesNotPermitted, codes.PermissionDenied},
		{CodeStorageFailure, codes.Internal},
		{CodeUnknown, codes.Internal},
	}

	for _, tc := range cases {
		if got := tc.code.GRPCCode(); got != tc.want {
			t.Fatalf("GRPCCode(%s) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
