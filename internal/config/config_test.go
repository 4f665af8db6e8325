package config

import "testing"

func TestLoadConfig(t *testing.T) {
	cfg := LoadConfig()

	if cfg.OutputPath != "answers.txt" {
		t.Errorf("OutputPath: got %s, want answers.txt", cfg.OutputPath)
	}
	if cfg.Dataset != "baseline" {
		t.Errorf("Dataset: got %s, want baseline", cfg.Dataset)
	}
	if cfg.Acceleration != 4 {
		t.Errorf("Acceleration: got %v, want 4", cfg.Acceleration)
	}
	if cfg.Confidence <= 0 || cfg.Confidence >= 1 {
		t.Errorf("Confidence: got %v, want a value in (0,1)", cfg.Confidence)
	}
}
