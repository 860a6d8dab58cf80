package config

import (
	"time"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the yaml config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// Step 1: defaults are set in NewConfig

	// Step 2: yaml config file. The file lives in the state directory,
	// whose location may itself come from the environment, so resolve
	// the env-supplied directory first.
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	if err := l.config.LoadFromFile(l.config.GetConfigFilePath()); err != nil {
		return nil, err
	}

	// Step 3: environment variables win over the file
	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	// Step 4: validate the result
	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// API overrides
	APIBaseURL *string
	APITimeout *time.Duration

	// State overrides
	StateDir      *string
	StateFilename *string

	// Display overrides
	RecentTaskLimit *int
	TimeFormat      *string

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.APIBaseURL != nil {
		config.API.BaseURL = *overrides.APIBaseURL
	}
	if overrides.APITimeout != nil {
		config.API.Timeout = *overrides.APITimeout
	}
	if overrides.StateDir != nil {
		config.State.Dir = *overrides.StateDir
	}
	if overrides.StateFilename != nil {
		config.State.Filename = *overrides.StateFilename
	}
	if overrides.RecentTaskLimit != nil {
		config.Display.RecentTaskLimit = *overrides.RecentTaskLimit
	}
	if overrides.TimeFormat != nil {
		config.Display.TimeFormat = *overrides.TimeFormat
	}
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
