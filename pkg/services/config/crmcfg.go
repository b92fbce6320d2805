// Package config loads client configuration: named connection profiles
// from a ~/.0crmcfg ini file and optional tuning settings from a yaml
// settings file.
package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// EnvAPIKey is the environment variable consulted when no profile
// supplies a key.
const EnvAPIKey = "ZERO_CRM_API_KEY"

// DefaultHost is the public Zero CRM endpoint.
const DefaultHost = "https://vbrsrhfxfv6qk2jbrraym2a2du0qlazt.lambda-url.us-east-1.on.aws"

// Profile is one named connection in the cfg file.
type Profile struct {
	Name   string
	Host   string
	APIKey string
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

// NewRegistry loads a .0crmcfg-style ini file where each section is a
// profile with api_key and optional host keys.
func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	host := section.Key("host").String()
	if host == "" {
		host = DefaultHost
	}

	return &Profile{
		Name:   name,
		Host:   host,
		APIKey: section.Key("api_key").String(),
	}, nil
}
