package pipeline

import (
	"fmt"

	"github.com/vault51/basemodel/config"
	"github.com/vault51/basemodel/model"
	"github.com/vault51/basemodel/postprocess"
	"github.com/vault51/basemodel/preprocess"
)

// Assemble resolves the stage names in cfg against the registries and
// builds the pipeline. The model name must resolve; preprocessor and
// postprocessor names are optional and left nil when unset.
func Assemble(name string, cfg config.PipelineConfig, models *model.Registry, pres *preprocess.Registry, posts *postprocess.Registry) (*Pipeline, error) {
	mdl, ok := models.Get(cfg.Model)
	if !ok {
		return nil, fmt.Errorf("pipeline %s: model %q: %w", name, cfg.Model, model.ErrNotFound)
	}

	var pre preprocess.Preprocessor
	if cfg.Preprocessor != "" {
		pre, ok = pres.Get(cfg.Preprocessor)
		if !ok {
			return nil, fmt.Errorf("pipeline %s: preprocessor %q: %w", name, cfg.Preprocessor, preprocess.ErrNotFound)
		}
	}

	var post postprocess.Postprocessor
	if cfg.Postprocessor != "" {
		post, ok = posts.Get(cfg.Postprocessor)
		if !ok {
			return nil, fmt.Errorf("pipeline %s: postprocessor %q: %w", name, cfg.Postprocessor, postprocess.ErrNotFound)
		}
	}

	return New(name, pre, mdl, post), nil
}
