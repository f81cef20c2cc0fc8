// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// StaticProvider always returns a copy of Config. Used by tests and callers
// that already hold a configuration.
type StaticProvider struct {
	Config *Config
	Err    error
}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load implements Provider.
func (p StaticProvider) Load(_ context.Context, _ LoadOptions) (*Config, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	if p.Config == nil {
		return DefaultConfig(), nil
	}
	cfg := *p.Config
	cfg.TargetModules = append([]string(nil), p.Config.TargetModules...)
	cfg.Sources = append([]SourceEntry(nil), p.Config.Sources...)
	cfg.Solution.BuildFlavors = append([]string(nil), p.Config.Solution.BuildFlavors...)
	return &cfg, nil
}
