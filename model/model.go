package model

import (
	"context"
	"fmt"
)

// DefaultSampleRate is the sample rate assumed for input waveforms when the
// caller does not provide one, in Hz.
const DefaultSampleRate = 16000

// Prediction is a single recognized word and the probability the model
// assigned to it.
type Prediction struct {
	Word        string  `json:"word"`
	Probability float64 `json:"probability"`
}

// Model defines the core interface for inference models that turn an audio
// waveform into word predictions. Concrete implementations live in
// downstream packages; this module only ships the contract.
type Model interface {
	// Predict runs inference on a waveform sampled at sampleRate Hz.
	Predict(ctx context.Context, wave []float64, sampleRate int) ([]Prediction, error)
}

// Make sure Base implements Model.
var _ Model = (*Base)(nil)

// Base is the stub concrete models embed. It stores the model file path
// without reading or validating it, and fails every Predict call until an
// embedding type overrides it.
type Base struct {
	path string
}

// New creates a Base pointing at the given model file.
func New(pathToModel string) *Base {
	return &Base{path: pathToModel}
}

// Path returns the model file path the Base was constructed with.
func (b *Base) Path() string {
	return b.path
}

// Predict always fails with ErrNotImplemented.
func (b *Base) Predict(_ context.Context, _ []float64, _ int) ([]Prediction, error) {
	return nil, fmt.Errorf("model: predict: %w", ErrNotImplemented)
}
