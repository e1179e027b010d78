package preprocess

import "errors"

// Error definitions for the preprocess package.
var (
	ErrNotImplemented    = errors.New("process is not implemented")
	ErrNotFound          = errors.New("preprocessor not found in registry")
	ErrAlreadyRegistered = errors.New("preprocessor is already registered in the registry")
)
