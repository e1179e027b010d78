package config

import (
	"github.com/vault51/basemodel/model"
	"github.com/vault51/basemodel/params"
)

// Config holds the manifest describing the configured models and the
// pipelines assembled from them.
type Config struct {
	Version   string                    `json:"version"             yaml:"version"`
	Storage   StorageConfig             `json:"storage,omitempty"   yaml:"storage,omitempty"`
	Models    map[string]ModelConfig    `json:"models"              yaml:"models"`
	Pipelines map[string]PipelineConfig `json:"pipelines,omitempty" yaml:"pipelines,omitempty"`
}

// StorageConfig holds configuration for where model files live.
type StorageConfig struct {
	ModelsDir string `json:"models_dir,omitempty" yaml:"models_dir,omitempty"`
}

// ModelConfig holds configuration for a specific model. Path is stored
// as-is; nothing in this module opens or validates the file.
type ModelConfig struct {
	Path       string         `json:"path"                  yaml:"path"`
	Type       string         `json:"type,omitempty"        yaml:"type,omitempty"`
	SampleRate int            `json:"sample_rate,omitempty" yaml:"sample_rate,omitempty"`
	Tags       []string       `json:"tags,omitempty"        yaml:"tags,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"  yaml:"parameters,omitempty"`
}

// PipelineConfig names the stage implementations composing a pipeline.
// Preprocessor and postprocessor are optional.
type PipelineConfig struct {
	Preprocessor  string `json:"preprocessor,omitempty"  yaml:"preprocessor,omitempty"`
	Model         string `json:"model"                   yaml:"model"`
	Postprocessor string `json:"postprocessor,omitempty" yaml:"postprocessor,omitempty"`
}

// EffectiveSampleRate returns the sample rate for this model.
// Precedence: the sample_rate field, the sample_rate parameter, then
// model.DefaultSampleRate.
func (m *ModelConfig) EffectiveSampleRate() int {
	if m.SampleRate > 0 {
		return m.SampleRate
	}

	return params.Get(m.Parameters, params.SampleRate, model.DefaultSampleRate)
}
