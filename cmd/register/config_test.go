package main

import (
	"os"
	"path/filepath"
	"testing"

	"med-register/internal/registration"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reg.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}
	return path
}

func TestLoadConfigNotExists(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestLoadConfigFull(t *testing.T) {
	path := writeConfig(t, `levels: 3
learning_rate: 0.05
iterations: 100
gradient_step: 0.0001
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	opts := registration.DefaultOptions()
	cfg.apply(&opts)

	if opts.Levels != 3 {
		t.Errorf("Levels = %d, want 3", opts.Levels)
	}
	if opts.LearningRate != 0.05 {
		t.Errorf("LearningRate = %g, want 0.05", opts.LearningRate)
	}
	if opts.Iterations != 100 {
		t.Errorf("Iterations = %d, want 100", opts.Iterations)
	}
	if opts.GradientStep != 1e-4 {
		t.Errorf("GradientStep = %g, want 1e-4", opts.GradientStep)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "iterations: 50\n")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	opts := registration.DefaultOptions()
	cfg.apply(&opts)

	if opts.Iterations != 50 {
		t.Errorf("Iterations = %d, want 50", opts.Iterations)
	}
	if opts.Levels != 5 {
		t.Errorf("Levels = %d, want default 5", opts.Levels)
	}
	if opts.LearningRate != 0.1 {
		t.Errorf("LearningRate = %g, want default 0.1", opts.LearningRate)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero levels", "levels: 0\n"},
		{"negative learning rate", "learning_rate: -0.1\n"},
		{"zero iterations", "iterations: 0\n"},
		{"zero gradient step", "gradient_step: 0\n"},
		{"malformed yaml", "levels: [oops\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			if _, err := loadConfig(path); err == nil {
				t.Errorf("expected error for %q", tt.body)
			}
		})
	}
}
