// Package pipeline composes the three stage contracts into a single run:
// preprocessor, model, postprocessor. The pipeline itself performs no
// computation; all behavior comes from the stage implementations.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vault51/basemodel/model"
	"github.com/vault51/basemodel/params"
	"github.com/vault51/basemodel/postprocess"
	"github.com/vault51/basemodel/preprocess"
)

// Request encapsulates all parameters for one pipeline run.
type Request struct {
	// Wave is the raw audio waveform.
	Wave []float64

	// SampleRate is the waveform sample rate in Hz. Zero means the
	// sample_rate parameter, falling back to model.DefaultSampleRate.
	SampleRate int

	// Parameters contains stage-specific options.
	Parameters map[string]any
}

// Response contains the result of a pipeline run.
type Response struct {
	Predictions []model.Prediction
	Metadata    *ResponseMetadata
}

// ResponseMetadata contains metadata about the run.
type ResponseMetadata struct {
	RunID      string        `json:"run_id"`
	Pipeline   string        `json:"pipeline"`
	SampleRate int           `json:"sample_rate"`
	Timestamp  time.Time     `json:"timestamp"`
	Duration   time.Duration `json:"duration"`
}

// Pipeline chains a preprocessor, a model and a postprocessor.
// Preprocessor and postprocessor are optional and skipped when nil; a
// pipeline without a model cannot run.
type Pipeline struct {
	name string
	pre  preprocess.Preprocessor
	mdl  model.Model
	post postprocess.Postprocessor
}

// New creates a pipeline. Pass nil for stages that are not used.
func New(name string, pre preprocess.Preprocessor, mdl model.Model, post postprocess.Postprocessor) *Pipeline {
	return &Pipeline{
		name: name,
		pre:  pre,
		mdl:  mdl,
		post: post,
	}
}

// Name returns the pipeline name.
func (p *Pipeline) Name() string {
	return p.name
}

// Run executes the configured stages in order and returns the final
// predictions. With stub stages every run fails with the stage's
// ErrNotImplemented, which callers can test with errors.Is.
func (p *Pipeline) Run(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, fmt.Errorf("pipeline %s: %w", p.name, ErrNilRequest)
	}
	if p.mdl == nil {
		return nil, fmt.Errorf("pipeline %s: %w", p.name, ErrNoModel)
	}

	runID := uuid.NewString()
	start := time.Now()

	sampleRate := req.SampleRate
	if sampleRate == 0 {
		sampleRate = params.Get(req.Parameters, params.SampleRate, model.DefaultSampleRate)
	}

	wave := req.Wave
	if p.pre != nil {
		var err error
		wave, err = p.pre.Process(ctx, wave)
		if err != nil {
			return nil, fmt.Errorf("pipeline %s: preprocess: %w", p.name, err)
		}
	}

	preds, err := p.mdl.Predict(ctx, wave, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("pipeline %s: predict: %w", p.name, err)
	}

	if p.post != nil {
		preds, err = p.post.Process(ctx, preds)
		if err != nil {
			return nil, fmt.Errorf("pipeline %s: postprocess: %w", p.name, err)
		}
	}

	duration := time.Since(start)
	slog.Debug("Pipeline run finished",
		"pipeline", p.name,
		"run_id", runID,
		"sample_rate", sampleRate,
		"predictions", len(preds),
		"duration", duration,
	)

	return &Response{
		Predictions: preds,
		Metadata: &ResponseMetadata{
			RunID:      runID,
			Pipeline:   p.name,
			SampleRate: sampleRate,
			Timestamp:  start,
			Duration:   duration,
		},
	}, nil
}
