package pipeline

import "errors"

// Error definitions for the pipeline package.
var (
	ErrNoModel    = errors.New("pipeline has no model configured")
	ErrNilRequest = errors.New("pipeline request is nil")
)
