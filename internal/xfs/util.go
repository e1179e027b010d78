package xfs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ExpandTilde replaces a leading tilde (~) with the user's home directory.
// The path is returned unchanged when the home directory cannot be
// resolved.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~/"))
}

// Exists reports whether path exists on fsys.
func Exists(fsys afero.Fs, path string) (bool, error) {
	return afero.Exists(fsys, path)
}

// DirExists reports whether path exists on fsys and is a directory.
func DirExists(fsys afero.Fs, path string) (bool, error) {
	return afero.DirExists(fsys, path)
}
