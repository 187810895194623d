package server

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	compatv1 "github.com/sdkgate/sdkgate/api/gen/go/compat/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestServer_ResolvesAndOverridesRoundTrip(t *testing.T) {
	configDir := t.TempDir()
	writeConfig(t, configDir, "platform_compat_config.xml", `<config>
	<compat-change id="12" name="LEGACY_OFF" disabled="true" description="Legacy path retired"/>
	<compat-change id="123" name="GATED" enableAfterTargetSdk="29"/>
</config>`)
	t.Setenv("SDKGATE_COMPAT_CONFIG_DIR", configDir)
	t.Setenv("SDKGATE_COMPAT_DB_PATH", filepath.Join(t.TempDir(), "compat.db"))
	t.Setenv("SDKGATE_BUILD_TYPE", "userdebug")

	client, _ := startServer(t)

	app := &compatv1.AppInfo{PackageName: "com.example.app", TargetSdkVersion: 30}

	enabledResp, err := client.IsChangeEnabled(context.Background(), &compatv1.IsChangeEnabledRequest{
		ChangeId: 12,
		App:      app,
	})
	if err != nil {
		t.Fatalf("is change enabled: %v", err)
	}
	if enabledResp.GetEnabled() {
		t.Fatal("enabled = true, want false for disabled change")
	}

	lookupResp, err := client.LookupChangeId(context.Background(), &compatv1.LookupChangeIdRequest{Name: "GATED"})
	if err != nil {
		t.Fatalf("lookup change id: %v", err)
	}
	if lookupResp.GetChangeId() != 123 {
		t.Fatalf("change_id = %d, want 123", lookupResp.GetChangeId())
	}

	if _, err := client.SetOverride(context.Background(), &compatv1.SetOverrideRequest{
		ChangeId:    12,
		PackageName: "com.example.app",
		Enabled:     true,
	}); err != nil {
		t.Fatalf("set override: %v", err)
	}

	enabledResp, err = client.IsChangeEnabled(context.Background(), &compatv1.IsChangeEnabledRequest{
		ChangeId: 12,
		App:      app,
	})
	if err != nil {
		t.Fatalf("is change enabled after override: %v", err)
	}
	if !enabledResp.GetEnabled() {
		t.Fatal("enabled = false, want true after override")
	}

	disabledResp, err := client.GetDisabledChanges(context.Background(), &compatv1.GetDisabledChangesRequest{
		App: &compatv1.AppInfo{PackageName: "com.other.app", TargetSdkVersion: 30},
	})
	if err != nil {
		t.Fatalf("get disabled changes: %v", err)
	}
	if len(disabledResp.GetChangeIds()) != 1 || disabledResp.GetChangeIds()[0] != 12 {
		t.Fatalf("change_ids = %v, want [12]", disabledResp.GetChangeIds())
	}

	listResp, err := client.ListChanges(context.Background(), &compatv1.ListChangesRequest{})
	if err != nil {
		t.Fatalf("list changes: %v", err)
	}
	if len(listResp.GetChanges()) != 2 || listResp.GetChanges()[0].GetId() != 12 {
		t.Fatalf("changes = %v, want ascending [12 123]", listResp.GetChanges())
	}
}

func TestServer_OverridesSurviveRestart(t *testing.T) {
	configDir := t.TempDir()
	writeConfig(t, configDir, "platform_compat_config.xml", `<config>
	<compat-change id="12" name="LEGACY_OFF" disabled="true"/>
</config>`)
	dbPath := filepath.Join(t.TempDir(), "compat.db")
	t.Setenv("SDKGATE_COMPAT_CONFIG_DIR", configDir)
	t.Setenv("SDKGATE_COMPAT_DB_PATH", dbPath)
	t.Setenv("SDKGATE_BUILD_TYPE", "userdebug")

	app := &compatv1.AppInfo{PackageName: "com.example.app", TargetSdkVersion: 30}

	first, stopFirst := startServer(t)
	if _, err := first.SetOverride(context.Background(), &compatv1.SetOverrideRequest{
		ChangeId:    12,
		PackageName: "com.example.app",
		Enabled:     true,
	}); err != nil {
		t.Fatalf("set override: %v", err)
	}
	stopFirst()

	client, _ := startServer(t)
	resp, err := client.IsChangeEnabled(context.Background(), &compatv1.IsChangeEnabledRequest{
		ChangeId: 12,
		App:      app,
	})
	if err != nil {
		t.Fatalf("is change enabled after restart: %v", err)
	}
	if !resp.GetEnabled() {
		t.Fatal("enabled = false, want true from persisted override")
	}
}

func TestServer_AppliesConfigDocumentWrites(t *testing.T) {
	configDir := t.TempDir()
	t.Setenv("SDKGATE_COMPAT_CONFIG_DIR", configDir)
	t.Setenv("SDKGATE_COMPAT_DB_PATH", filepath.Join(t.TempDir(), "compat.db"))
	t.Setenv("SDKGATE_BUILD_TYPE", "userdebug")

	client, _ := startServer(t)

	app := &compatv1.AppInfo{PackageName: "com.example.app", TargetSdkVersion: 30}

	resp, err := client.IsChangeEnabled(context.Background(), &compatv1.IsChangeEnabledRequest{
		ChangeId: 55,
		App:      app,
	})
	if err != nil {
		t.Fatalf("is change enabled: %v", err)
	}
	if !resp.GetEnabled() {
		t.Fatal("enabled = false, want true for unknown change")
	}

	writeConfig(t, configDir, "platform_compat_config.xml", `<config>
	<compat-change id="55" name="ROLLED_BACK" disabled="true"/>
</config>`)

	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := client.IsChangeEnabled(context.Background(), &compatv1.IsChangeEnabledRequest{
			ChangeId: 55,
			App:      app,
		})
		if err != nil {
			t.Fatalf("is change enabled during reload: %v", err)
		}
		if !resp.GetEnabled() {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("config document write was not applied")
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// startServer boots a server on a random port and returns a connected client
// and an idempotent shutdown function. Shutdown also runs as a cleanup.
func startServer(t *testing.T) (compatv1.CompatServiceClient, func()) {
	t.Helper()

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		runCancel()
		t.Fatalf("dial compat server: %v", err)
	}

	var once sync.Once
	shutdown := func() {
		once.Do(func() {
			if closeErr := conn.Close(); closeErr != nil {
				t.Errorf("close gRPC connection: %v", closeErr)
			}
			runCancel()
			select {
			case serveErr := <-serveDone:
				if serveErr != nil {
					t.Errorf("serve: %v", serveErr)
				}
			case <-time.After(5 * time.Second):
				t.Error("timeout waiting for server shutdown")
			}
		})
	}
	t.Cleanup(shutdown)

	return compatv1.NewCompatServiceClient(conn), shutdown
}

func writeConfig(t *testing.T, dir, name, body string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(`<?xml version="1.0" encoding="utf-8"?>`+"\n"+body), 0o644); err != nil {
		t.Fatalf("write config %s: %v", name, err)
	}
}
