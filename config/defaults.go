package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/vault51/basemodel/internal/envvar"
	"github.com/vault51/basemodel/internal/xfs"
)

// DefaultConfigPath returns the default path for the basemodel config
// directory.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "basemodel", "config")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", "basemodel")
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "basemodel")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "basemodel")
		}
		return filepath.Join(home, ".config", "basemodel")
	}
}

// DefaultModelsPath returns the default path for the basemodel models
// directory.
func DefaultModelsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "basemodel", "models")
	}

	switch runtime.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Local", "basemodel", "models")
	case "darwin":
		return filepath.Join(home, "Library", "Caches", "basemodel", "models")
	default: // Linux, BSD, etc.
		if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
			return filepath.Join(xdg, "basemodel", "models")
		}
		return filepath.Join(home, ".cache", "basemodel", "models")
	}
}

// ResolveModelsPath returns the directory relative model paths resolve
// against.
// Precedence:
// 1. BASEMODEL_MODELS_PATH environment variable.
// 2. ModelsDir field in the manifest.
// 3. Default models path.
func ResolveModelsPath(cfg *Config) string {
	if p := os.Getenv(envvar.BaseModelModelsPath); p != "" {
		return xfs.ExpandTilde(p)
	}
	if cfg != nil && cfg.Storage.ModelsDir != "" {
		return xfs.ExpandTilde(cfg.Storage.ModelsDir)
	}
	return xfs.ExpandTilde(DefaultModelsPath())
}
