package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the taskboard client
type Config struct {
	API         APIConfig
	State       StateConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// APIConfig holds remote API configuration
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"TB_API_BASE_URL"`
	Timeout time.Duration `yaml:"timeout" env:"TB_API_TIMEOUT"`
}

// StateConfig holds durable client-state configuration
type StateConfig struct {
	Dir            string `yaml:"dir" env:"TB_STATE_DIR"`
	Filename       string `yaml:"filename" env:"TB_STATE_FILENAME"`
	DirPermissions uint32 `yaml:"dir_permissions" env:"TB_STATE_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	RecentTaskLimit int    `yaml:"recent_task_limit" env:"TB_DISPLAY_RECENT_LIMIT"`
	TimeFormat      string `yaml:"time_format" env:"TB_TIME_DISPLAY_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TB_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"TB_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultStateDir := filepath.Join(homeDir, ".tb")

	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000/api",
			Timeout: 30 * time.Second,
		},
		State: StateConfig{
			Dir:            defaultStateDir,
			Filename:       "tb.db",
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			RecentTaskLimit: 4,
			TimeFormat:      "2006-01-02 15:04:05",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetStatePath returns the full path to the client-state database file
func (c *Config) GetStatePath() string {
	return filepath.Join(c.State.Dir, c.State.Filename)
}

// GetConfigFilePath returns the path of the optional yaml config file
func (c *Config) GetConfigFilePath() string {
	return filepath.Join(c.State.Dir, "config.yaml")
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// API configuration
	if baseURL := os.Getenv("TB_API_BASE_URL"); baseURL != "" {
		c.API.BaseURL = baseURL
	}
	if timeout := os.Getenv("TB_API_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.API.Timeout = d
		}
	}

	// State configuration
	if dir := os.Getenv("TB_STATE_DIR"); dir != "" {
		c.State.Dir = dir
	}
	if filename := os.Getenv("TB_STATE_FILENAME"); filename != "" {
		c.State.Filename = filename
	}
	if perms := os.Getenv("TB_STATE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.State.DirPermissions = uint32(p)
		}
	}

	// Display configuration
	if limit := os.Getenv("TB_DISPLAY_RECENT_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			c.Display.RecentTaskLimit = n
		}
	}
	if format := os.Getenv("TB_TIME_DISPLAY_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}

	// Application configuration
	if timeout := os.Getenv("TB_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TB_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return &ConfigError{Field: "api.base_url", Message: "API base URL cannot be empty"}
	}
	if c.API.Timeout <= 0 {
		return &ConfigError{Field: "api.timeout", Message: "API timeout must be positive"}
	}
	if c.State.Dir == "" {
		return &ConfigError{Field: "state.dir", Message: "state directory cannot be empty"}
	}
	if c.State.Filename == "" {
		return &ConfigError{Field: "state.filename", Message: "state filename cannot be empty"}
	}
	if c.Display.RecentTaskLimit < 1 {
		return &ConfigError{Field: "display.recent_task_limit", Message: "recent task limit must be at least 1"}
	}
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
