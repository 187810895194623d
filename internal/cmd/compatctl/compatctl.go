// Package compatctl implements the compat inspection and override CLI.
package compatctl

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	compatv1 "github.com/sdkgate/sdkgate/api/gen/go/compat/v1"
	"github.com/sdkgate/sdkgate/internal/platform/config"
	platformgrpc "github.com/sdkgate/sdkgate/internal/platform/grpc"
	"github.com/sdkgate/sdkgate/internal/platform/timeouts"
	"google.golang.org/grpc/metadata"
)

// Config holds compatctl command configuration.
type Config struct {
	Addr    string
	Grant   string
	Timeout time.Duration

	IsEnabled       bool
	DisabledChanges bool
	Lookup          bool
	List            bool
	SetOverride     bool
	RemoveOverride  bool
	PutChange       bool

	ChangeID             uint64
	PackageName          string
	TargetSDK            int
	Name                 string
	Enabled              bool
	Disabled             bool
	EnableAfterTargetSDK int
	Description          string
	Filter               string
	PageSize             int
	PageToken            string
	JSONOutput           bool
}

type envConfig struct {
	Addr    string        `env:"SDKGATE_COMPAT_ADDR"       envDefault:"localhost:8082"`
	Grant   string        `env:"SDKGATE_ADMIN_GRANT"`
	Timeout time.Duration `env:"SDKGATE_COMPATCTL_TIMEOUT" envDefault:"10s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Addr:    envCfg.Addr,
		Grant:   envCfg.Grant,
		Timeout: envCfg.Timeout,
	}

	fs.BoolVar(&cfg.IsEnabled, "is-enabled", false, "resolve one change for one app")
	fs.BoolVar(&cfg.DisabledChanges, "disabled-changes", false, "list change ids disabled for one app")
	fs.BoolVar(&cfg.Lookup, "lookup", false, "resolve a change name to its id")
	fs.BoolVar(&cfg.List, "list", false, "list change definitions")
	fs.BoolVar(&cfg.SetOverride, "set-override", false, "force a change on or off for one package")
	fs.BoolVar(&cfg.RemoveOverride, "remove-override", false, "clear an override for one package")
	fs.BoolVar(&cfg.PutChange, "put-change", false, "upsert a change definition")

	fs.Uint64Var(&cfg.ChangeID, "change-id", 0, "change id")
	fs.StringVar(&cfg.PackageName, "package", "", "app package name")
	fs.IntVar(&cfg.TargetSDK, "target-sdk", 0, "app target sdk version")
	fs.StringVar(&cfg.Name, "name", "", "change name")
	fs.BoolVar(&cfg.Enabled, "enabled", true, "override state for -set-override")
	fs.BoolVar(&cfg.Disabled, "disabled", false, "mark the change disabled for -put-change")
	fs.IntVar(&cfg.EnableAfterTargetSDK, "enable-after-target-sdk", -1, "gate for -put-change (-1 = not gated)")
	fs.StringVar(&cfg.Description, "description", "", "change description for -put-change")
	fs.StringVar(&cfg.Filter, "filter", "", "list filter expression")
	fs.IntVar(&cfg.PageSize, "page-size", 0, "list page size (0 = server default)")
	fs.StringVar(&cfg.PageToken, "page-token", "", "list page token")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "output JSON")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "compat server address")
	fs.StringVar(&cfg.Grant, "grant", cfg.Grant, "admin grant token for mutations on final builds")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the compatctl command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	conn, err := platformgrpc.DialWithHealth(ctx, nil, cfg.Addr, timeouts.GRPCDial, nil, platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		return fmt.Errorf("dial compat server at %s: %w", cfg.Addr, err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			fmt.Fprintf(errOut, "Error: close connection: %v\n", closeErr)
		}
	}()

	return runWithClient(ctx, cfg, compatv1.NewCompatServiceClient(conn), out)
}

// validateConfig checks that exactly one operation is selected and its
// required parameters are present.
func validateConfig(cfg Config) error {
	selected := 0
	for _, op := range []bool{cfg.IsEnabled, cfg.DisabledChanges, cfg.Lookup, cfg.List, cfg.SetOverride, cfg.RemoveOverride, cfg.PutChange} {
		if op {
			selected++
		}
	}
	if selected == 0 {
		return errors.New("one of -is-enabled, -disabled-changes, -lookup, -list, -set-override, -remove-override, or -put-change is required")
	}
	if selected > 1 {
		return errors.New("operation flags are mutually exclusive")
	}

	switch {
	case cfg.IsEnabled:
		if cfg.ChangeID == 0 {
			return errors.New("-change-id is required with -is-enabled")
		}
		if strings.TrimSpace(cfg.PackageName) == "" {
			return errors.New("-package is required with -is-enabled")
		}
	case cfg.DisabledChanges:
		if strings.TrimSpace(cfg.PackageName) == "" {
			return errors.New("-package is required with -disabled-changes")
		}
	case cfg.Lookup:
		if strings.TrimSpace(cfg.Name) == "" {
			return errors.New("-name is required with -lookup")
		}
	case cfg.SetOverride, cfg.RemoveOverride:
		if cfg.ChangeID == 0 {
			return errors.New("-change-id is required for override operations")
		}
		if strings.TrimSpace(cfg.PackageName) == "" {
			return errors.New("-package is required for override operations")
		}
	case cfg.PutChange:
		if cfg.ChangeID == 0 {
			return errors.New("-change-id is required with -put-change")
		}
		if strings.TrimSpace(cfg.Name) == "" {
			return errors.New("-name is required with -put-change")
		}
	}
	return nil
}

// runWithClient contains the operation dispatch with an injectable client.
func runWithClient(ctx context.Context, cfg Config, client compatv1.CompatServiceClient, out io.Writer) error {
	if grant := strings.TrimSpace(cfg.Grant); grant != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+grant)
	}

	switch {
	case cfg.IsEnabled:
		return runIsEnabled(ctx, cfg, client, out)
	case cfg.DisabledChanges:
		return runDisabledChanges(ctx, cfg, client, out)
	case cfg.Lookup:
		return runLookup(ctx, cfg, client, out)
	case cfg.List:
		return runList(ctx, cfg, client, out)
	case cfg.SetOverride:
		return runSetOverride(ctx, cfg, client, out)
	case cfg.RemoveOverride:
		return runRemoveOverride(ctx, cfg, client, out)
	case cfg.PutChange:
		return runPutChange(ctx, cfg, client, out)
	}
	return errors.New("no operation selected")
}

type isEnabledResult struct {
	ChangeID    uint64 `json:"change_id"`
	PackageName string `json:"package_name"`
	TargetSDK   int32  `json:"target_sdk_version"`
	Enabled     bool   `json:"enabled"`
}

func runIsEnabled(ctx context.Context, cfg Config, client compatv1.CompatServiceClient, out io.Writer) error {
	resp, err := client.IsChangeEnabled(ctx, &compatv1.IsChangeEnabledRequest{
		ChangeId: cfg.ChangeID,
		App: &compatv1.AppInfo{
			PackageName:      cfg.PackageName,
			TargetSdkVersion: int32(cfg.TargetSDK),
		},
	})
	if err != nil {
		return fmt.Errorf("is change enabled: %w", err)
	}

	if cfg.JSONOutput {
		return outputJSON(out, isEnabledResult{
			ChangeID:    cfg.ChangeID,
			PackageName: cfg.PackageName,
			TargetSDK:   int32(cfg.TargetSDK),
			Enabled:     resp.GetEnabled(),
		})
	}
	state := "disabled"
	if resp.GetEnabled() {
		state = "enabled"
	}
	fmt.Fprintf(out, "change %d is %s for %s (target sdk %d)\n", cfg.ChangeID, state, cfg.PackageName, cfg.TargetSDK)
	return nil
}

type disabledChangesResult struct {
	PackageName string   `json:"package_name"`
	TargetSDK   int32    `json:"target_sdk_version"`
	ChangeIDs   []uint64 `json:"change_ids"`
}

func runDisabledChanges(ctx context.Context, cfg Config, client compatv1.CompatServiceClient, out io.Writer) error {
	resp, err := client.GetDisabledChanges(ctx, &compatv1.GetDisabledChangesRequest{
		App: &compatv1.AppInfo{
			PackageName:      cfg.PackageName,
			TargetSdkVersion: int32(cfg.TargetSDK),
		},
	})
	if err != nil {
		return fmt.Errorf("get disabled changes: %w", err)
	}

	if cfg.JSONOutput {
		ids := resp.GetChangeIds()
		if ids == nil {
			ids = []uint64{}
		}
		return outputJSON(out, disabledChangesResult{
			PackageName: cfg.PackageName,
			TargetSDK:   int32(cfg.TargetSDK),
			ChangeIDs:   ids,
		})
	}
	if len(resp.GetChangeIds()) == 0 {
		fmt.Fprintf(out, "no changes are disabled for %s (target sdk %d)\n", cfg.PackageName, cfg.TargetSDK)
		return nil
	}
	for _, id := range resp.GetChangeIds() {
		fmt.Fprintf(out, "%d\n", id)
	}
	return nil
}

type lookupResult struct {
	Name     string `json:"name"`
	ChangeID int64  `json:"change_id"`
}

func runLookup(ctx context.Context, cfg Config, client compatv1.CompatServiceClient, out io.Writer) error {
	resp, err := client.LookupChangeId(ctx, &compatv1.LookupChangeIdRequest{Name: cfg.Name})
	if err != nil {
		return fmt.Errorf("lookup change id: %w", err)
	}

	if cfg.JSONOutput {
		return outputJSON(out, lookupResult{Name: cfg.Name, ChangeID: resp.GetChangeId()})
	}
	if resp.GetChangeId() < 0 {
		fmt.Fprintf(out, "change %q is not registered\n", cfg.Name)
		return nil
	}
	fmt.Fprintf(out, "change %q has id %d\n", cfg.Name, resp.GetChangeId())
	return nil
}

type changeRecord struct {
	ID                   uint64 `json:"id"`
	Name                 string `json:"name"`
	EnableAfterTargetSDK int32  `json:"enable_after_target_sdk"`
	Disabled             bool   `json:"disabled"`
	Description          string `json:"description,omitempty"`
}

type listResult struct {
	Changes       []changeRecord `json:"changes"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

func runList(ctx context.Context, cfg Config, client compatv1.CompatServiceClient, out io.Writer) error {
	resp, err := client.ListChanges(ctx, &compatv1.ListChangesRequest{
		Filter:    cfg.Filter,
		PageSize:  int32(cfg.PageSize),
		PageToken: cfg.PageToken,
	})
	if err != nil {
		return fmt.Errorf("list changes: %w", err)
	}

	if cfg.JSONOutput {
		result := listResult{
			Changes:       make([]changeRecord, 0, len(resp.GetChanges())),
			NextPageToken: resp.GetNextPageToken(),
		}
		for _, change := range resp.GetChanges() {
			result.Changes = append(result.Changes, changeRecordFromProto(change))
		}
		return outputJSON(out, result)
	}
	for _, change := range resp.GetChanges() {
		printChange(out, change)
	}
	if token := resp.GetNextPageToken(); token != "" {
		fmt.Fprintf(out, "next page token: %s\n", token)
	}
	return nil
}

type setOverrideResult struct {
	ChangeID    uint64 `json:"change_id"`
	PackageName string `json:"package_name"`
	Enabled     bool   `json:"enabled"`
}

func runSetOverride(ctx context.Context, cfg Config, client compatv1.CompatServiceClient, out io.Writer) error {
	if _, err := client.SetOverride(ctx, &compatv1.SetOverrideRequest{
		ChangeId:    cfg.ChangeID,
		PackageName: cfg.PackageName,
		Enabled:     cfg.Enabled,
	}); err != nil {
		return fmt.Errorf("set override: %w", err)
	}

	if cfg.JSONOutput {
		return outputJSON(out, setOverrideResult{
			ChangeID:    cfg.ChangeID,
			PackageName: cfg.PackageName,
			Enabled:     cfg.Enabled,
		})
	}
	state := "disabled"
	if cfg.Enabled {
		state = "enabled"
	}
	fmt.Fprintf(out, "override set: change %d is now %s for %s\n", cfg.ChangeID, state, cfg.PackageName)
	return nil
}

type removeOverrideResult struct {
	ChangeID    uint64 `json:"change_id"`
	PackageName string `json:"package_name"`
	Removed     bool   `json:"removed"`
}

func runRemoveOverride(ctx context.Context, cfg Config, client compatv1.CompatServiceClient, out io.Writer) error {
	resp, err := client.RemoveOverride(ctx, &compatv1.RemoveOverrideRequest{
		ChangeId:    cfg.ChangeID,
		PackageName: cfg.PackageName,
	})
	if err != nil {
		return fmt.Errorf("remove override: %w", err)
	}

	if cfg.JSONOutput {
		return outputJSON(out, removeOverrideResult{
			ChangeID:    cfg.ChangeID,
			PackageName: cfg.PackageName,
			Removed:     resp.GetRemoved(),
		})
	}
	if resp.GetRemoved() {
		fmt.Fprintf(out, "override removed: change %d for %s\n", cfg.ChangeID, cfg.PackageName)
	} else {
		fmt.Fprintf(out, "no override present: change %d for %s\n", cfg.ChangeID, cfg.PackageName)
	}
	return nil
}

func runPutChange(ctx context.Context, cfg Config, client compatv1.CompatServiceClient, out io.Writer) error {
	resp, err := client.PutChange(ctx, &compatv1.PutChangeRequest{
		Change: &compatv1.CompatChange{
			Id:                   cfg.ChangeID,
			Name:                 cfg.Name,
			EnableAfterTargetSdk: int32(cfg.EnableAfterTargetSDK),
			Disabled:             cfg.Disabled,
			Description:          cfg.Description,
		},
	})
	if err != nil {
		return fmt.Errorf("put change: %w", err)
	}

	if cfg.JSONOutput {
		return outputJSON(out, changeRecordFromProto(resp.GetChange()))
	}
	fmt.Fprint(out, "change stored: ")
	printChange(out, resp.GetChange())
	return nil
}

func changeRecordFromProto(change *compatv1.CompatChange) changeRecord {
	return changeRecord{
		ID:                   change.GetId(),
		Name:                 change.GetName(),
		EnableAfterTargetSDK: change.GetEnableAfterTargetSdk(),
		Disabled:             change.GetDisabled(),
		Description:          change.GetDescription(),
	}
}

func printChange(out io.Writer, change *compatv1.CompatChange) {
	fmt.Fprintf(out, "%d %s gate=%d disabled=%t", change.GetId(), change.GetName(), change.GetEnableAfterTargetSdk(), change.GetDisabled())
	if description := change.GetDescription(); description != "" {
		fmt.Fprintf(out, " %s", description)
	}
	fmt.Fprintln(out)
}

func outputJSON(out io.Writer, result any) error {
	encoded, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Fprintln(out, string(encoded))
	return nil
}
