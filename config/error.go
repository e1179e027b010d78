package config

import "errors"

// Error definitions for the config package.
var (
	ErrUnsupportedFs = errors.New("manifest watcher requires the OS filesystem")
)
