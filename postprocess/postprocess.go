package postprocess

import (
	"context"
	"fmt"

	"github.com/vault51/basemodel/model"
)

// Postprocessor defines the contract for turning raw model output into
// final results, e.g. thresholding or merging adjacent word predictions.
type Postprocessor interface {
	// Process transforms the prediction list produced by a model.
	Process(ctx context.Context, preds []model.Prediction) ([]model.Prediction, error)
}

// Make sure Base implements Postprocessor.
var _ Postprocessor = (*Base)(nil)

// Base is the stub concrete postprocessors embed. It fails every Process
// call until an embedding type overrides it.
type Base struct{}

// New creates a Base postprocessor.
func New() *Base {
	return &Base{}
}

// Process always fails with ErrNotImplemented.
func (*Base) Process(_ context.Context, _ []model.Prediction) ([]model.Prediction, error) {
	return nil, fmt.Errorf("postprocess: process: %w", ErrNotImplemented)
}
