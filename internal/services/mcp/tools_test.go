package mcp

import (
	"context"
	"fmt"
	"testing"

	compatv1 "github.com/sdkgate/sdkgate/api/gen/go/compat/v1"
	"google.golang.org/grpc"
)

type fakeCompatClient struct {
	enabledResp  *compatv1.IsChangeEnabledResponse
	disabledResp *compatv1.GetDisabledChangesResponse
	lookupResp   *compatv1.LookupChangeIdResponse
	listResp     *compatv1.ListChangesResponse
	err          error

	lastRequest any
}

func (f *fakeCompatClient) IsChangeEnabled(_ context.Context, in *compatv1.IsChangeEnabledRequest, _ ...grpc.CallOption) (*compatv1.IsChangeEnabledResponse, error) {
	f.lastRequest = in
	return f.enabledResp, f.err
}

func (f *fakeCompatClient) GetDisabledChanges(_ context.Context, in *compatv1.GetDisabledChangesRequest, _ ...grpc.CallOption) (*compatv1.GetDisabledChangesResponse, error) {
	f.lastRequest = in
	return f.disabledResp, f.err
}

func (f *fakeCompatClient) LookupChangeId(_ context.Context, in *compatv1.LookupChangeIdRequest, _ ...grpc.CallOption) (*compatv1.LookupChangeIdResponse, error) {
	f.lastRequest = in
	return f.lookupResp, f.err
}

func (f *fakeCompatClient) PutChange(_ context.Context, in *compatv1.PutChangeRequest, _ ...grpc.CallOption) (*compatv1.PutChangeResponse, error) {
	f.lastRequest = in
	return nil, f.err
}

func (f *fakeCompatClient) SetOverride(_ context.Context, in *compatv1.SetOverrideRequest, _ ...grpc.CallOption) (*compatv1.SetOverrideResponse, error) {
	f.lastRequest = in
	return nil, f.err
}

func (f *fakeCompatClient) RemoveOverride(_ context.Context, in *compatv1.RemoveOverrideRequest, _ ...grpc.CallOption) (*compatv1.RemoveOverrideResponse, error) {
	f.lastRequest = in
	return nil, f.err
}

func (f *fakeCompatClient) ListChanges(_ context.Context, in *compatv1.ListChangesRequest, _ ...grpc.CallOption) (*compatv1.ListChangesResponse, error) {
	f.lastRequest = in
	return f.listResp, f.err
}

func TestIsChangeEnabledHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := &fakeCompatClient{enabledResp: &compatv1.IsChangeEnabledResponse{Enabled: true}}
		handler := IsChangeEnabledHandler(client)
		_, result, err := handler(context.Background(), nil, IsChangeEnabledInput{
			ChangeID:         123,
			PackageName:      "com.example.app",
			TargetSDKVersion: 30,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ChangeID != 123 || result.PackageName != "com.example.app" || !result.Enabled {
			t.Errorf("unexpected result: %+v", result)
		}

		req, ok := client.lastRequest.(*compatv1.IsChangeEnabledRequest)
		if !ok {
			t.Fatalf("expected IsChangeEnabledRequest, got %T", client.lastRequest)
		}
		if req.GetApp().GetTargetSdkVersion() != 30 {
			t.Errorf("expected target sdk 30, got %d", req.GetApp().GetTargetSdkVersion())
		}
	})

	t.Run("missing change id", func(t *testing.T) {
		handler := IsChangeEnabledHandler(&fakeCompatClient{})
		_, _, err := handler(context.Background(), nil, IsChangeEnabledInput{PackageName: "com.example.app"})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("missing package name", func(t *testing.T) {
		handler := IsChangeEnabledHandler(&fakeCompatClient{})
		_, _, err := handler(context.Background(), nil, IsChangeEnabledInput{ChangeID: 1})
		if err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("gRPC error", func(t *testing.T) {
		client := &fakeCompatClient{err: fmt.Errorf("connection refused")}
		handler := IsChangeEnabledHandler(client)
		_, _, err := handler(context.Background(), nil, IsChangeEnabledInput{ChangeID: 1, PackageName: "com.example.app"})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestLookupChangeHandler(t *testing.T) {
	t.Run("known name", func(t *testing.T) {
		client := &fakeCompatClient{lookupResp: &compatv1.LookupChangeIdResponse{ChangeId: 1234}}
		handler := LookupChangeHandler(client)
		_, result, err := handler(context.Background(), nil, LookupChangeInput{Name: "NEW_BEHAVIOR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Found || result.ChangeID != 1234 {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		client := &fakeCompatClient{lookupResp: &compatv1.LookupChangeIdResponse{ChangeId: -1}}
		handler := LookupChangeHandler(client)
		_, result, err := handler(context.Background(), nil, LookupChangeInput{Name: "MISSING"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Found || result.ChangeID != -1 {
			t.Errorf("expected unknown-name result, got %+v", result)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		handler := LookupChangeHandler(&fakeCompatClient{})
		_, _, err := handler(context.Background(), nil, LookupChangeInput{})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestDisabledChangesHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := &fakeCompatClient{disabledResp: &compatv1.GetDisabledChangesResponse{ChangeIds: []uint64{12, 1234}}}
		handler := DisabledChangesHandler(client)
		_, result, err := handler(context.Background(), nil, DisabledChangesInput{
			PackageName:      "com.example.app",
			TargetSDKVersion: 29,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.ChangeIDs) != 2 || result.ChangeIDs[0] != 12 || result.ChangeIDs[1] != 1234 {
			t.Errorf("unexpected ids: %v", result.ChangeIDs)
		}
	})

	t.Run("empty response stays non-nil", func(t *testing.T) {
		client := &fakeCompatClient{disabledResp: &compatv1.GetDisabledChangesResponse{}}
		handler := DisabledChangesHandler(client)
		_, result, err := handler(context.Background(), nil, DisabledChangesInput{PackageName: "com.example.app"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ChangeIDs == nil {
			t.Error("expected empty slice, got nil")
		}
	})

	t.Run("missing package name", func(t *testing.T) {
		handler := DisabledChangesHandler(&fakeCompatClient{})
		_, _, err := handler(context.Background(), nil, DisabledChangesInput{})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestListChangesHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := &fakeCompatClient{listResp: &compatv1.ListChangesResponse{
			Changes: []*compatv1.CompatChange{
				{Id: 12, Name: "LEGACY_OFF", EnableAfterTargetSdk: -1, Disabled: true},
				{Id: 123, Name: "GATED", EnableAfterTargetSdk: 29, Description: "gated behavior"},
			},
			NextPageToken: "123",
		}}
		handler := ListChangesHandler(client)
		_, result, err := handler(context.Background(), nil, ListChangesInput{Filter: "disabled == true", PageSize: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Changes) != 2 {
			t.Fatalf("expected 2 changes, got %d", len(result.Changes))
		}
		if result.Changes[0].EnableAfterTargetSDK != -1 || !result.Changes[0].Disabled {
			t.Errorf("unexpected first entry: %+v", result.Changes[0])
		}
		if result.NextPageToken != "123" {
			t.Errorf("expected next page token, got %q", result.NextPageToken)
		}

		req, ok := client.lastRequest.(*compatv1.ListChangesRequest)
		if !ok {
			t.Fatalf("expected ListChangesRequest, got %T", client.lastRequest)
		}
		if req.GetFilter() != "disabled == true" || req.GetPageSize() != 2 {
			t.Errorf("unexpected request: %+v", req)
		}
	})

	t.Run("gRPC error", func(t *testing.T) {
		client := &fakeCompatClient{err: fmt.Errorf("connection refused")}
		handler := ListChangesHandler(client)
		_, _, err := handler(context.Background(), nil, ListChangesInput{})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
