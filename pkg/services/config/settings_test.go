package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := `max_retries: 5
backoff_factor: 1.5
timeout_seconds: 30
report:
  default_probability: 0.2
  stage_probabilities:
    Lead: 0.05
    Negotiation: 0.9`
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("failed to write test settings: %v", err)
	}

	// When
	settings, err := LoadSettings(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if settings.MaxRetries != 5 {
		t.Errorf("expected MaxRetries=5, got %d", settings.MaxRetries)
	}
	if settings.BackoffFactor != 1.5 {
		t.Errorf("expected BackoffFactor=1.5, got %f", settings.BackoffFactor)
	}
	if settings.TimeoutSeconds != 30 {
		t.Errorf("expected TimeoutSeconds=30, got %d", settings.TimeoutSeconds)
	}
	if settings.Report.DefaultProbability != 0.2 {
		t.Errorf("expected DefaultProbability=0.2, got %f", settings.Report.DefaultProbability)
	}
	if settings.Report.StageProbabilities["Negotiation"] != 0.9 {
		t.Errorf("expected Negotiation=0.9, got %f", settings.Report.StageProbabilities["Negotiation"])
	}
}

func TestLoadSettings_PartialYAML_LeavesZeroValues(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	err := os.WriteFile(path, []byte("max_retries: 2"), 0o644)
	if err != nil {
		t.Fatalf("failed to write test settings: %v", err)
	}

	// When
	settings, err := LoadSettings(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if settings.MaxRetries != 2 {
		t.Errorf("expected MaxRetries=2, got %d", settings.MaxRetries)
	}
	if settings.BackoffFactor != 0 {
		t.Errorf("expected BackoffFactor unset, got %f", settings.BackoffFactor)
	}
	if settings.Report.StageProbabilities != nil {
		t.Errorf("expected no stage probabilities, got %v", settings.Report.StageProbabilities)
	}
}

func TestLoadSettings_MissingFile_ReturnsError(t *testing.T) {
	// When
	_, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))

	// Then
	if err == nil {
		t.Error("expected error for missing settings file, got nil")
	}
}
