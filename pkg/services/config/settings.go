package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings are the optional tuning knobs read from a yaml settings file.
// Anything left unset falls back to client/report defaults.
type Settings struct {
	MaxRetries     int            `mapstructure:"max_retries"`
	BackoffFactor  float64        `mapstructure:"backoff_factor"`
	TimeoutSeconds int            `mapstructure:"timeout_seconds"`
	Report         ReportSettings `mapstructure:"report"`
}

// ReportSettings override the forecast probability heuristic.
type ReportSettings struct {
	StageProbabilities map[string]float64 `mapstructure:"stage_probabilities"`
	DefaultProbability float64            `mapstructure:"default_probability"`
}

// LoadSettings loads configuration from the specified settings file
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}
