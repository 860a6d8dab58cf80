package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the yaml config file's layout. All fields are
// optional; only set values override the defaults.
type fileConfig struct {
	API struct {
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"api"`
	State struct {
		Dir      string `yaml:"dir"`
		Filename string `yaml:"filename"`
	} `yaml:"state"`
	Display struct {
		RecentTaskLimit int    `yaml:"recent_task_limit"`
		TimeFormat      string `yaml:"time_format"`
	} `yaml:"display"`
	Application struct {
		Timeout time.Duration `yaml:"timeout"`
		Verbose *bool         `yaml:"verbose"`
	} `yaml:"application"`
}

// LoadFromFile applies settings from a yaml config file if it exists.
// A missing file is not an error; a malformed one is.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &ConfigError{Field: "config_file", Message: err.Error()}
	}

	var file fileConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return &ConfigError{Field: "config_file", Message: "invalid yaml: " + err.Error()}
	}

	if file.API.BaseURL != "" {
		c.API.BaseURL = file.API.BaseURL
	}
	if file.API.Timeout > 0 {
		c.API.Timeout = file.API.Timeout
	}
	if file.State.Dir != "" {
		c.State.Dir = file.State.Dir
	}
	if file.State.Filename != "" {
		c.State.Filename = file.State.Filename
	}
	if file.Display.RecentTaskLimit > 0 {
		c.Display.RecentTaskLimit = file.Display.RecentTaskLimit
	}
	if file.Display.TimeFormat != "" {
		c.Display.TimeFormat = file.Display.TimeFormat
	}
	if file.Application.Timeout > 0 {
		c.Application.Timeout = file.Application.Timeout
	}
	if file.Application.Verbose != nil {
		c.Application.Verbose = *file.Application.Verbose
	}

	return nil
}
