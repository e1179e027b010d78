package config

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Watcher watches the manifest file and revalidates it on change.
type Watcher struct {
	fsys       afero.Fs
	path       string
	schemaPath string
	onReload   func(*Config, error)
	current    *Config
	mu         sync.RWMutex
	reloads    atomic.Uint32
}

// NewWatcher loads the manifest once and then watches it for edits,
// invoking onReload after each revalidation. fsnotify only sees the OS
// filesystem, so any other afero.Fs is rejected up front instead of
// leaving the watch goroutine dead.
func NewWatcher(fsys afero.Fs, path, schemaPath string, onReload func(*Config, error)) (*Watcher, error) {
	if _, ok := fsys.(*afero.OsFs); !ok {
		return nil, fmt.Errorf("config: %w, got %T", ErrUnsupportedFs, fsys)
	}

	watcher := &Watcher{
		fsys:       fsys,
		path:       path,
		schemaPath: schemaPath,
		onReload:   onReload,
	}

	cfg, err := LoadAndValidate(fsys, path, schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial manifest: %w", err)
	}
	watcher.current = cfg

	go watcher.watch()

	return watcher, nil
}

// watch watches for manifest changes.
func (cw *Watcher) watch() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("Failed to create file watcher", "error", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(cw.path); err != nil {
		slog.Error("Failed to watch manifest file", "path", cw.path, "error", err)
		return
	}

	var timer *time.Timer
	const debounce = 500 * time.Millisecond

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// Create covers editors that replace the file on save.
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if timer != nil {
					timer.Stop()
				}

				timer = time.AfterFunc(debounce, func() {
					cw.reload()
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}

			slog.Error("Watcher error", "error", err)
		}
	}
}

// reload revalidates the manifest file.
func (cw *Watcher) reload() {
	count := cw.reloads.Add(1)
	slog.Info("Reloading manifest file", "path", cw.path, "count", count)

	cfg, err := LoadAndValidate(cw.fsys, cw.path, cw.schemaPath)
	if err != nil {
		slog.Error("Failed to reload manifest", "error", err)
		cw.onReload(nil, err)
		return
	}

	cw.mu.Lock()
	cw.current = cfg
	cw.mu.Unlock()

	slog.Info("Manifest reloaded successfully", "count", count)
	cw.onReload(cfg, nil)
}

// Snapshot returns the current manifest snapshot (thread-safe).
func (cw *Watcher) Snapshot() *Config {
	cw.mu.RLock()
	defer cw.mu.RUnlock()

	return cw.current
}

// ReloadCount returns the number of times the manifest has been reloaded.
func (cw *Watcher) ReloadCount() uint32 {
	return cw.reloads.Load()
}
