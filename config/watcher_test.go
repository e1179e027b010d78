package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher_RejectsNonOSFilesystem(t *testing.T) {
	fsys := newTestFs(t)
	require.NoError(t, afero.WriteFile(fsys, "config.yaml", []byte(validManifest), 0o644))

	w, err := NewWatcher(fsys, "config.yaml", "schema.json", func(*Config, error) {})
	assert.ErrorIs(t, err, ErrUnsupportedFs)
	assert.Nil(t, w)
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	schemaPath := filepath.Join(dir, "schema.json")

	schema, err := os.ReadFile("basemodel.v1.schema.json")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(schemaPath, schema, 0o644))
	require.NoError(t, os.WriteFile(configPath, []byte(validManifest), 0o644))

	reloads := make(chan *Config, 4)
	w, err := NewWatcher(afero.NewOsFs(), configPath, schemaPath, func(cfg *Config, err error) {
		if err == nil {
			reloads <- cfg
		}
	})
	require.NoError(t, err)

	assert.Equal(t, "1", w.Snapshot().Version)
	assert.Equal(t, uint32(0), w.ReloadCount())

	// Give the watch goroutine time to register the path before editing.
	time.Sleep(500 * time.Millisecond)

	updated := strings.Replace(validManifest, `version: "1"`, `version: "2"`, 1)
	require.NoError(t, os.WriteFile(configPath, []byte(updated), 0o644))

	select {
	case cfg := <-reloads:
		assert.Equal(t, "2", cfg.Version)
	case <-time.After(5 * time.Second):
		t.Fatal("manifest reload never fired")
	}

	assert.Equal(t, "2", w.Snapshot().Version)
	assert.GreaterOrEqual(t, w.ReloadCount(), uint32(1))
}

func TestWatcher_InvalidEditKeepsLastGoodSnapshot(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	schemaPath := filepath.Join(dir, "schema.json")

	schema, err := os.ReadFile("basemodel.v1.schema.json")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(schemaPath, schema, 0o644))
	require.NoError(t, os.WriteFile(configPath, []byte(validManifest), 0o644))

	errs := make(chan error, 4)
	w, err := NewWatcher(afero.NewOsFs(), configPath, schemaPath, func(_ *Config, err error) {
		if err != nil {
			errs <- err
		}
	})
	require.NoError(t, err)

	time.Sleep(500 * time.Millisecond)

	require.NoError(t, os.WriteFile(configPath, []byte("{::"), 0o644))

	select {
	case reloadErr := <-errs:
		assert.Contains(t, reloadErr.Error(), "invalid YAML")
	case <-time.After(5 * time.Second):
		t.Fatal("reload error never surfaced")
	}

	// The last valid manifest stays in place.
	assert.Equal(t, "1", w.Snapshot().Version)
}
