package model

import "errors"

// Error definitions for the model package.
var (
	ErrNotImplemented    = errors.New("predict is not implemented")
	ErrNotFound          = errors.New("model not found in registry")
	ErrAlreadyRegistered = errors.New("model is already registered in the registry")
)
