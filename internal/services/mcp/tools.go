package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	compatv1 "github.com/sdkgate/sdkgate/api/gen/go/compat/v1"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// grpcCallTimeout caps the time for a single gRPC call from an MCP tool handler.
const grpcCallTimeout = 5 * time.Second

// IsChangeEnabledInput is the MCP tool input for change resolution.
type IsChangeEnabledInput struct {
	ChangeID         uint64 `json:"change_id" jsonschema:"compat change identifier"`
	PackageName      string `json:"package_name" jsonschema:"app package name"`
	TargetSDKVersion int    `json:"target_sdk_version" jsonschema:"sdk version the app targets"`
}

// IsChangeEnabledResult is the MCP tool output for change resolution.
type IsChangeEnabledResult struct {
	ChangeID    uint64 `json:"change_id" jsonschema:"compat change identifier"`
	PackageName string `json:"package_name" jsonschema:"app package name"`
	Enabled     bool   `json:"enabled" jsonschema:"whether the change applies to the app"`
}

// LookupChangeInput is the MCP tool input for name resolution.
type LookupChangeInput struct {
	Name string `json:"name" jsonschema:"compat change name"`
}

// LookupChangeResult is the MCP tool output for name resolution.
type LookupChangeResult struct {
	Name     string `json:"name" jsonschema:"compat change name"`
	Found    bool   `json:"found" jsonschema:"whether the name is registered"`
	ChangeID int64  `json:"change_id" jsonschema:"change id, -1 when the name is unknown"`
}

// DisabledChangesInput is the MCP tool input for listing disabled change ids.
type DisabledChangesInput struct {
	PackageName      string `json:"package_name" jsonschema:"app package name"`
	TargetSDKVersion int    `json:"target_sdk_version" jsonschema:"sdk version the app targets"`
}

// DisabledChangesResult is the MCP tool output for listing disabled change ids.
type DisabledChangesResult struct {
	PackageName string   `json:"package_name" jsonschema:"app package name"`
	ChangeIDs   []uint64 `json:"change_ids" jsonschema:"ascending ids of changes disabled for the app"`
}

// ListChangesInput is the MCP tool input for listing change definitions.
type ListChangesInput struct {
	Filter    string `json:"filter,omitempty" jsonschema:"optional filter expression over name, disabled, and enable_after_target_sdk"`
	PageSize  int    `json:"page_size,omitempty" jsonschema:"optional page size (server default when 0)"`
	PageToken string `json:"page_token,omitempty" jsonschema:"optional continuation token from a previous page"`
}

// ChangeEntry is one change definition in an MCP listing.
type ChangeEntry struct {
	ID                   uint64 `json:"id" jsonschema:"compat change identifier"`
	Name                 string `json:"name" jsonschema:"compat change name"`
	EnableAfterTargetSDK int    `json:"enable_after_target_sdk" jsonschema:"sdk gate, -1 when not gated"`
	Disabled             bool   `json:"disabled" jsonschema:"whether the change is disabled by default"`
	Description          string `json:"description,omitempty" jsonschema:"optional human description"`
}

// ListChangesResult is the MCP tool output for listing change definitions.
type ListChangesResult struct {
	Changes       []ChangeEntry `json:"changes" jsonschema:"change definitions in ascending id order"`
	NextPageToken string        `json:"next_page_token,omitempty" jsonschema:"continuation token, empty on the last page"`
}

// IsChangeEnabledTool defines the MCP tool schema for change resolution.
func IsChangeEnabledTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "compat_is_change_enabled",
		Description: "Resolves whether a compat change is enabled for an app",
	}
}

// LookupChangeTool defines the MCP tool schema for name resolution.
func LookupChangeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "compat_lookup_change",
		Description: "Resolves a compat change name to its id",
	}
}

// DisabledChangesTool defines the MCP tool schema for listing disabled change ids.
func DisabledChangesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "compat_disabled_changes",
		Description: "Lists the change ids disabled for an app",
	}
}

// ListChangesTool defines the MCP tool schema for listing change definitions.
func ListChangesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "compat_list_changes",
		Description: "Lists registered compat change definitions",
	}
}

// IsChangeEnabledHandler resolves one change for one app.
func IsChangeEnabledHandler(client compatv1.CompatServiceClient) mcp.ToolHandlerFor[IsChangeEnabledInput, IsChangeEnabledResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input IsChangeEnabledInput) (*mcp.CallToolResult, IsChangeEnabledResult, error) {
		if input.ChangeID == 0 {
			return nil, IsChangeEnabledResult{}, fmt.Errorf("change_id is required")
		}
		if strings.TrimSpace(input.PackageName) == "" {
			return nil, IsChangeEnabledResult{}, fmt.Errorf("package_name is required")
		}

		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		response, err := client.IsChangeEnabled(callCtx, &compatv1.IsChangeEnabledRequest{
			ChangeId: input.ChangeID,
			App: &compatv1.AppInfo{
				PackageName:      input.PackageName,
				TargetSdkVersion: int32(input.TargetSDKVersion),
			},
		})
		if err != nil {
			return nil, IsChangeEnabledResult{}, fmt.Errorf("is change enabled failed: %w", err)
		}

		result := IsChangeEnabledResult{
			ChangeID:    input.ChangeID,
			PackageName: input.PackageName,
			Enabled:     response.GetEnabled(),
		}
		return nil, result, nil
	}
}

// LookupChangeHandler resolves a change name to its id.
func LookupChangeHandler(client compatv1.CompatServiceClient) mcp.ToolHandlerFor[LookupChangeInput, LookupChangeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LookupChangeInput) (*mcp.CallToolResult, LookupChangeResult, error) {
		if strings.TrimSpace(input.Name) == "" {
			return nil, LookupChangeResult{}, fmt.Errorf("name is required")
		}

		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		response, err := client.LookupChangeId(callCtx, &compatv1.LookupChangeIdRequest{Name: input.Name})
		if err != nil {
			return nil, LookupChangeResult{}, fmt.Errorf("lookup change failed: %w", err)
		}

		result := LookupChangeResult{
			Name:     input.Name,
			Found:    response.GetChangeId() >= 0,
			ChangeID: response.GetChangeId(),
		}
		return nil, result, nil
	}
}

// DisabledChangesHandler lists the change ids disabled for an app.
func DisabledChangesHandler(client compatv1.CompatServiceClient) mcp.ToolHandlerFor[DisabledChangesInput, DisabledChangesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DisabledChangesInput) (*mcp.CallToolResult, DisabledChangesResult, error) {
		if strings.TrimSpace(input.PackageName) == "" {
			return nil, DisabledChangesResult{}, fmt.Errorf("package_name is required")
		}

		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		response, err := client.GetDisabledChanges(callCtx, &compatv1.GetDisabledChangesRequest{
			App: &compatv1.AppInfo{
				PackageName:      input.PackageName,
				TargetSdkVersion: int32(input.TargetSDKVersion),
			},
		})
		if err != nil {
			return nil, DisabledChangesResult{}, fmt.Errorf("disabled changes failed: %w", err)
		}

		ids := response.GetChangeIds()
		if ids == nil {
			ids = []uint64{}
		}
		result := DisabledChangesResult{
			PackageName: input.PackageName,
			ChangeIDs:   ids,
		}
		return nil, result, nil
	}
}

// ListChangesHandler lists registered change definitions.
func ListChangesHandler(client compatv1.CompatServiceClient) mcp.ToolHandlerFor[ListChangesInput, ListChangesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListChangesInput) (*mcp.CallToolResult, ListChangesResult, error) {
		callCtx, cancel := context.WithTimeout(ctx, grpcCallTimeout)
		defer cancel()

		response, err := client.ListChanges(callCtx, &compatv1.ListChangesRequest{
			Filter:    input.Filter,
			PageSize:  int32(input.PageSize),
			PageToken: input.PageToken,
		})
		if err != nil {
			return nil, ListChangesResult{}, fmt.Errorf("list changes failed: %w", err)
		}

		result := ListChangesResult{
			Changes:       make([]ChangeEntry, 0, len(response.GetChanges())),
			NextPageToken: response.GetNextPageToken(),
		}
		for _, change := range response.GetChanges() {
			result.Changes = append(result.Changes, ChangeEntry{
				ID:                   change.GetId(),
				Name:                 change.GetName(),
				EnableAfterTargetSDK: int(change.GetEnableAfterTargetSdk()),
				Disabled:             change.GetDisabled(),
				Description:          change.GetDescription(),
			})
		}
		return nil, result, nil
	}
}
