package postprocess

import "errors"

// Error definitions for the postprocess package.
var (
	ErrNotImplemented    = errors.New("process is not implemented")
	ErrNotFound          = errors.New("postprocessor not found in registry")
	ErrAlreadyRegistered = errors.New("postprocessor is already registered in the registry")
)
