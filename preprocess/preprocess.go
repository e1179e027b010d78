package preprocess

import (
	"context"
	"fmt"
)

// Preprocessor defines the contract for transforming a raw audio waveform
// before it is handed to a model.
type Preprocessor interface {
	// Process transforms the input waveform and returns the result.
	Process(ctx context.Context, wave []float64) ([]float64, error)
}

// Make sure Base implements Preprocessor.
var _ Preprocessor = (*Base)(nil)

// Base is the stub concrete preprocessors embed. It fails every Process
// call until an embedding type overrides it.
type Base struct{}

// New creates a Base preprocessor.
func New() *Base {
	return &Base{}
}

// Process always fails with ErrNotImplemented.
func (*Base) Process(_ context.Context, _ []float64) ([]float64, error) {
	return nil, fmt.Errorf("preprocess: process: %w", ErrNotImplemented)
}
