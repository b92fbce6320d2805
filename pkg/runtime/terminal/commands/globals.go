// Package commands holds the 0crm subcommands: contacts and deals CRUD,
// pipeline reporting, profile/health checks, CSV import and demo seeding.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/thierryteisseire/0crm-skill/pkg/services/config"
	"github.com/thierryteisseire/0crm-skill/pkg/services/crm"
	"github.com/thierryteisseire/0crm-skill/pkg/services/pipeline"
)

// Globals carry the persistent flag values and shared output/logging
// sinks into every subcommand.
type Globals struct {
	ConfigPath   string
	Profile      string
	Host         string
	SettingsPath string
	Timeout      time.Duration

	Output io.Writer
	Logger zerolog.Logger
}

// Context returns a context carrying the CLI logger.
func (g *Globals) Context() context.Context {
	return g.Logger.WithContext(context.Background())
}

// Client builds an authenticated API client. The key resolves from the
// selected profile first, then the ZERO_CRM_API_KEY environment variable.
func (g *Globals) Client() (*crm.Client, error) {
	return g.client(true)
}

// AnonymousClient builds a client without requiring a key, for the
// unauthenticated health endpoint.
func (g *Globals) AnonymousClient() (*crm.Client, error) {
	return g.client(false)
}

func (g *Globals) client(requireKey bool) (*crm.Client, error) {
	settings := crm.Settings{
		Host:    g.Host,
		Timeout: g.Timeout,
	}

	if g.SettingsPath != "" {
		tuned, err := config.LoadSettings(g.SettingsPath)
		if err != nil {
			return nil, err
		}
		settings.MaxRetries = tuned.MaxRetries
		settings.BackoffFactor = tuned.BackoffFactor
		settings.Timeout = time.Duration(tuned.TimeoutSeconds) * time.Second
		if g.Timeout > 0 {
			settings.Timeout = g.Timeout
		}
	}

	if g.Profile != "" {
		registry, err := config.NewRegistry(g.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", g.ConfigPath, err)
		}
		profile, err := registry.GetProfile(context.Background(), g.Profile)
		if err != nil {
			return nil, err
		}
		settings.APIKey = profile.APIKey
		if settings.Host == "" {
			settings.Host = profile.Host
		}
	}

	if settings.APIKey == "" {
		settings.APIKey = os.Getenv(config.EnvAPIKey)
	}
	if settings.APIKey == "" && requireKey {
		return nil, fmt.Errorf("no API key found: set %s in the environment or a .env file, "+
			"or select a profile with --profile", config.EnvAPIKey)
	}

	if settings.Host == "" {
		settings.Host = config.DefaultHost
	}

	return crm.NewClient(settings)
}

// ReportOptions resolves the forecast probability table, starting from
// the historical defaults and applying any settings-file overrides.
func (g *Globals) ReportOptions() (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	if g.SettingsPath == "" {
		return opts, nil
	}

	tuned, err := config.LoadSettings(g.SettingsPath)
	if err != nil {
		return opts, err
	}
	if len(tuned.Report.StageProbabilities) > 0 {
		opts.StageProbabilities = tuned.Report.StageProbabilities
	}
	if tuned.Report.DefaultProbability > 0 {
		opts.DefaultProbability = tuned.Report.DefaultProbability
	}
	return opts, nil
}
