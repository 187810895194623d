package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStartRequiresReloadCallback(t *testing.T) {
	_, err := Start(Config{Dir: t.TempDir()}, nil)
	if err == nil {
		t.Fatal("Start() accepted a nil reload callback")
	}
}

func TestStartRequiresDir(t *testing.T) {
	_, err := Start(Config{Dir: "  "}, func() {})
	if err == nil {
		t.Fatal("Start() accepted a blank dir")
	}
}

func TestStartRejectsMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	_, err := Start(Config{Dir: dir}, func() {})
	if err == nil {
		t.Fatal("Start() accepted a missing dir")
	}
}

func TestWatcherReloadsAfterDocumentWrite(t *testing.T) {
	dir := t.TempDir()
	reloads := make(chan struct{}, 16)

	w, err := Start(Config{Dir: dir, Debounce: 10 * time.Millisecond}, func() {
		reloads <- struct{}{}
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "platform_compat_config.xml")
	if err := os.WriteFile(path, []byte("<config/>"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	select {
	case <-reloads:
	case <-time.After(5 * time.Second):
		t.Fatal("reload was not triggered after a document write")
	}
}

func TestWatcherIgnoresNonConfigFiles(t *testing.T) {
	dir := t.TempDir()
	reloads := make(chan struct{}, 16)

	w, err := Start(Config{Dir: dir, Debounce: 10 * time.Millisecond}, func() {
		reloads <- struct{}{}
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("not a config"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	select {
	case <-reloads:
		t.Fatal("reload was triggered for a non-config file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCollapsesEventBursts(t *testing.T) {
	dir := t.TempDir()
	reloads := make(chan struct{}, 16)

	w, err := Start(Config{Dir: dir, Debounce: 50 * time.Millisecond}, func() {
		reloads <- struct{}{}
	})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "platform_compat_config.xml")
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("<config/>"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}

	select {
	case <-reloads:
	case <-time.After(5 * time.Second):
		t.Fatal("reload was not triggered after a burst of writes")
	}

	// The burst happened inside one debounce window, so no second reload
	// should be pending.
	select {
	case <-reloads:
		t.Fatal("burst of writes triggered more than one reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestCloseStopsEventLoop(t *testing.T) {
	dir := t.TempDir()

	w, err := Start(Config{Dir: dir}, func() {})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// A second close on a stopped watcher reports the underlying error but
	// must not hang.
	_ = w.Close()
}
