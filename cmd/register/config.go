package main

import (
	"fmt"
	"os"

	"med-register/internal/registration"

	"gopkg.in/yaml.v3"
)

// runConfig mirrors the tunable registration options in YAML form. Pointer
// fields distinguish "absent" from "zero" so a partial config only overrides
// what it names.
type runConfig struct {
	Levels       *int     `yaml:"levels"`
	LearningRate *float64 `yaml:"learning_rate"`
	Iterations   *int     `yaml:"iterations"`
	GradientStep *float64 `yaml:"gradient_step"`
}

func loadConfig(path string) (*runConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg runConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	if cfg.Levels != nil && *cfg.Levels < 1 {
		return nil, fmt.Errorf("levels must be >= 1, got %d", *cfg.Levels)
	}
	if cfg.LearningRate != nil && *cfg.LearningRate <= 0 {
		return nil, fmt.Errorf("learning_rate must be positive, got %g", *cfg.LearningRate)
	}
	if cfg.Iterations != nil && *cfg.Iterations < 1 {
		return nil, fmt.Errorf("iterations must be >= 1, got %d", *cfg.Iterations)
	}
	if cfg.GradientStep != nil && *cfg.GradientStep <= 0 {
		return nil, fmt.Errorf("gradient_step must be positive, got %g", *cfg.GradientStep)
	}

	return &cfg, nil
}

// apply overlays the config's present fields onto opts.
func (c *runConfig) apply(opts *registration.Options) {
	if c.Levels != nil {
		opts.Levels = *c.Levels
	}
	if c.LearningRate != nil {
		opts.LearningRate = *c.LearningRate
	}
	if c.Iterations != nil {
		opts.Iterations = *c.Iterations
	}
	if c.GradientStep != nil {
		opts.GradientStep = *c.GradientStep
	}
}
