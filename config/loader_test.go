package config

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vault51/basemodel/model"
)

const validManifest = `
version: "1"
storage:
  models_dir: ~/models
models:
  kws-small:
    path: kws-small.onnx
    type: kws
    sample_rate: 16000
    tags: [keyword, small]
    parameters:
      min_probability: 0.5
  vad:
    path: /opt/models/vad.onnx
pipelines:
  default:
    preprocessor: normalize
    model: kws-small
    postprocessor: dedupe
  bare:
    model: vad
`

// newTestFs builds a memory fs seeded with the real schema shipped next to
// this package.
func newTestFs(t *testing.T) afero.Fs {
	t.Helper()

	schema, err := os.ReadFile("basemodel.v1.schema.json")
	require.NoError(t, err)

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "schema.json", schema, 0o644))

	return fsys
}

func TestLoadAndValidate(t *testing.T) {
	fsys := newTestFs(t)
	require.NoError(t, afero.WriteFile(fsys, "config.yaml", []byte(validManifest), 0o644))

	cfg, err := LoadAndValidate(fsys, "config.yaml", "schema.json")
	require.NoError(t, err)

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "~/models", cfg.Storage.ModelsDir)

	kws, ok := cfg.Models["kws-small"]
	require.True(t, ok)
	assert.Equal(t, "kws-small.onnx", kws.Path)
	assert.Equal(t, "kws", kws.Type)
	assert.Equal(t, 16000, kws.SampleRate)
	assert.Equal(t, []string{"keyword", "small"}, kws.Tags)
	assert.Equal(t, 0.5, kws.Parameters["min_probability"])

	def, ok := cfg.Pipelines["default"]
	require.True(t, ok)
	assert.Equal(t, "normalize", def.Preprocessor)
	assert.Equal(t, "kws-small", def.Model)
	assert.Equal(t, "dedupe", def.Postprocessor)

	bare, ok := cfg.Pipelines["bare"]
	require.True(t, ok)
	assert.Empty(t, bare.Preprocessor)
	assert.Empty(t, bare.Postprocessor)
}

func TestLoadAndValidate_MissingModelPath(t *testing.T) {
	fsys := newTestFs(t)

	manifest := `
version: "1"
models:
  broken:
    type: kws
`
	require.NoError(t, afero.WriteFile(fsys, "config.yaml", []byte(manifest), 0o644))

	_, err := LoadAndValidate(fsys, "config.yaml", "schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadAndValidate_PipelineWithoutModel(t *testing.T) {
	fsys := newTestFs(t)

	manifest := `
version: "1"
models:
  vad:
    path: vad.onnx
pipelines:
  broken:
    preprocessor: normalize
`
	require.NoError(t, afero.WriteFile(fsys, "config.yaml", []byte(manifest), 0o644))

	_, err := LoadAndValidate(fsys, "config.yaml", "schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadAndValidate_InvalidYAML(t *testing.T) {
	fsys := newTestFs(t)
	require.NoError(t, afero.WriteFile(fsys, "config.yaml", []byte("{::"), 0o644))

	_, err := LoadAndValidate(fsys, "config.yaml", "schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid YAML")
}

func TestLoadAndValidate_MissingFile(t *testing.T) {
	fsys := newTestFs(t)

	_, err := LoadAndValidate(fsys, "nope.yaml", "schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestModelConfig_EffectiveSampleRate(t *testing.T) {
	// Explicit field wins.
	mc := ModelConfig{SampleRate: 8000, Parameters: map[string]any{"sample_rate": 22050}}
	assert.Equal(t, 8000, mc.EffectiveSampleRate())

	// Parameter is next.
	mc = ModelConfig{Parameters: map[string]any{"sample_rate": 22050}}
	assert.Equal(t, 22050, mc.EffectiveSampleRate())

	// Default last.
	mc = ModelConfig{}
	assert.Equal(t, model.DefaultSampleRate, mc.EffectiveSampleRate())
}
