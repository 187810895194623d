// Package watch triggers config reloads when documents in the config
// directory change.
package watch

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 100 * time.Millisecond

// Config describes what to watch and how to report problems.
type Config struct {
	// Dir is the config directory to watch.
	Dir string
	// Debounce collapses event bursts into one reload. Defaults to 100ms.
	Debounce time.Duration
	// Logf receives watcher errors. Optional.
	Logf func(string, ...any)
}

// Watcher invokes a reload callback after config document events settle.
type Watcher struct {
	fsw  *fsnotify.Watcher
	done chan struct{}
}

// Start watches the config directory and calls reload after .xml document
// changes settle. Editors that replace files by rename are covered.
func Start(cfg Config, reload func()) (*Watcher, error) {
	if reload == nil {
		return nil, errors.New("reload callback is required")
	}
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return nil, errors.New("watch dir is required")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{fsw: fsw, done: make(chan struct{})}
	go w.run(debounce, cfg.Logf, reload)
	return w, nil
}

func (w *Watcher) run(debounce time.Duration, logf func(string, ...any), reload func()) {
	defer close(w.done)

	var debounceTimer *time.Timer
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".xml") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, reload)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if logf != nil {
				logf("config watcher error: %v", err)
			}
		}
	}
}

// Close stops the watcher and waits for the event loop to exit. A reload
// already past its debounce window may still run.
func (w *Watcher) Close() error {
	if w == nil || w.fsw == nil {
		return nil
	}
	err := w.fsw.Close()
	<-w.done
	return err
}
