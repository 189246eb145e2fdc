package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/nbscribe/nbscribe/internal/envutil"
)

// Sentinel errors for config loading.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds server configuration. Values resolve in order: defaults,
// then the optional YAML file, then environment variables.
type Config struct {
	Port                 int    `yaml:"port"`
	OutputDir            string `yaml:"outputDir"`
	ScratchDir           string `yaml:"scratchDir"`
	ExtractorScript      string `yaml:"extractorScript"`
	StyleModel           string `yaml:"styleModel"` // Optional separate model for the styling stage
	RenderTimeoutSeconds int    `yaml:"renderTimeoutSeconds"`
	LogMode              string `yaml:"logMode"`
}

func defaultServerConfig() Config {
	return Config{
		Port:                 5004,
		OutputDir:            "output",
		ScratchDir:           "scripts",
		ExtractorScript:      "scripts/process_notebook.py",
		RenderTimeoutSeconds: 60,
		LogMode:              "development",
	}
}

// loadConfig resolves the effective configuration. An empty path skips the
// file layer; a non-empty path must exist and parse strictly.
func loadConfig(path string) (Config, error) {
	cfg := defaultServerConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- config path is operator-provided
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
			return cfg, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	cfg.Port = envutil.GetInt("PORT", cfg.Port)
	cfg.OutputDir = envutil.Get("OUTPUT_DIR", cfg.OutputDir)
	cfg.ScratchDir = envutil.Get("SCRATCH_DIR", cfg.ScratchDir)
	cfg.ExtractorScript = envutil.Get("EXTRACTOR_SCRIPT", cfg.ExtractorScript)
	cfg.StyleModel = envutil.Get("AI_STYLE_MODEL", cfg.StyleModel)
	cfg.RenderTimeoutSeconds = envutil.GetInt("RENDER_TIMEOUT_SECONDS", cfg.RenderTimeoutSeconds)
	cfg.LogMode = envutil.Get("LOG_MODE", cfg.LogMode)

	return cfg, nil
}
