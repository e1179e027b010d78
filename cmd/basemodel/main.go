package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/vault51/basemodel/config"
	"github.com/vault51/basemodel/internal/env"
	"github.com/vault51/basemodel/internal/envvar"
	"github.com/vault51/basemodel/internal/logger"
	"github.com/vault51/basemodel/internal/xfs"
)

func main() {
	_ = godotenv.Load()

	var (
		flagConfigPath = flag.String("config", defaultConfigFile(), "Path to manifest file")
		flagSchemaPath = flag.String("schema", filepath.Join(config.DefaultConfigPath(), "basemodel.v1.schema.json"), "Path to manifest schema file")
		flagCheck      = flag.Bool("check", false, "Validate the manifest and exit")
	)
	flag.Parse()

	environment := env.FromEnv()

	slog.SetDefault(
		logger.New(environment,
			logger.WithLogToFile(true),
			logger.WithLogFile("logs/basemodel.log"),
		),
	)

	fsys := afero.NewOsFs()

	if *flagCheck {
		cfg, err := config.LoadAndValidate(fsys, *flagConfigPath, *flagSchemaPath)
		if err != nil {
			slog.Error("Manifest validation failed", "config", *flagConfigPath, "error", err)
			os.Exit(1)
		}

		report(fsys, cfg)
		slog.Info("Manifest is valid", "config", *flagConfigPath)
		return
	}

	watcher, err := config.NewWatcher(fsys, *flagConfigPath, *flagSchemaPath, func(cfg *config.Config, err error) {
		if err != nil {
			slog.Error("Failed to reload manifest", "error", err)
			return
		}

		report(fsys, cfg)
	})
	if err != nil {
		slog.Error("Failed to create manifest watcher", "error", err)
		return
	}

	report(fsys, watcher.Snapshot())
	slog.Info("Manifest loaded successfully", "config", *flagConfigPath, "schema", *flagSchemaPath)

	select {}
}

// defaultConfigFile resolves the manifest path.
// Precedence: BASEMODEL_CONFIG_PATH, then the platform config directory.
func defaultConfigFile() string {
	if p := os.Getenv(envvar.BaseModelConfigPath); p != "" {
		return xfs.ExpandTilde(p)
	}
	return filepath.Join(config.DefaultConfigPath(), "config.yaml")
}

// report logs every configured model with its resolved path and every
// pipeline with its stage names.
func report(fsys afero.Fs, cfg *config.Config) {
	modelsDir := config.ResolveModelsPath(cfg)
	if ok, err := xfs.DirExists(fsys, modelsDir); err == nil && !ok {
		slog.Warn("Models directory does not exist", "path", modelsDir)
	}

	for id, mc := range cfg.Models {
		p := xfs.ExpandTilde(mc.Path)
		if !filepath.IsAbs(p) {
			p = filepath.Join(modelsDir, p)
		}

		exists, err := xfs.Exists(fsys, p)
		if err != nil {
			slog.Warn("Failed to stat model path", "model_id", id, "path", p, "error", err)
		}

		slog.Info("Model configured",
			"model_id", id,
			"path", p,
			"exists", exists,
			"type", mc.Type,
			"sample_rate", mc.EffectiveSampleRate(),
			"tags", mc.Tags,
		)
	}

	for id, pc := range cfg.Pipelines {
		if _, ok := cfg.Models[pc.Model]; !ok {
			slog.Warn("Pipeline references unknown model", "pipeline_id", id, "model", pc.Model)
			continue
		}

		slog.Info("Pipeline configured",
			"pipeline_id", id,
			"preprocessor", pc.Preprocessor,
			"model", pc.Model,
			"postprocessor", pc.Postprocessor,
		)
	}
}
