package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	// Act
	cfg := NewConfig()

	// Assert
	assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "tb.db", cfg.State.Filename)
	assert.Equal(t, uint32(0755), cfg.State.DirPermissions)
	assert.Equal(t, 4, cfg.Display.RecentTaskLimit)
	assert.Equal(t, "2006-01-02 15:04:05", cfg.Display.TimeFormat)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("TB_API_BASE_URL", "https://tasks.example.com/api")
	t.Setenv("TB_API_TIMEOUT", "10s")
	t.Setenv("TB_STATE_DIR", "/var/lib/tb")
	t.Setenv("TB_DISPLAY_RECENT_LIMIT", "6")
	t.Setenv("TB_APP_VERBOSE", "true")
	cfg := NewConfig()

	// Act
	err := cfg.LoadFromEnvironment()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://tasks.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/var/lib/tb", cfg.State.Dir)
	assert.Equal(t, 6, cfg.Display.RecentTaskLimit)
	assert.True(t, cfg.Application.Verbose)
}

func TestConfig_LoadFromEnvironment_IgnoresBadValues(t *testing.T) {
	// Arrange
	t.Setenv("TB_API_TIMEOUT", "not-a-duration")
	t.Setenv("TB_DISPLAY_RECENT_LIMIT", "many")
	cfg := NewConfig()

	// Act
	err := cfg.LoadFromEnvironment()

	// Assert: unparseable values fall back to the defaults
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 4, cfg.Display.RecentTaskLimit)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{
			name:      "should reject an empty base URL",
			modify:    func(c *Config) { c.API.BaseURL = "" },
			wantField: "api.base_url",
		},
		{
			name:      "should reject a non-positive API timeout",
			modify:    func(c *Config) { c.API.Timeout = 0 },
			wantField: "api.timeout",
		},
		{
			name:      "should reject an empty state directory",
			modify:    func(c *Config) { c.State.Dir = "" },
			wantField: "state.dir",
		},
		{
			name:      "should reject an empty state filename",
			modify:    func(c *Config) { c.State.Filename = "" },
			wantField: "state.filename",
		},
		{
			name:      "should reject a recent task limit below one",
			modify:    func(c *Config) { c.Display.RecentTaskLimit = 0 },
			wantField: "display.recent_task_limit",
		},
		{
			name:      "should reject an empty time format",
			modify:    func(c *Config) { c.Display.TimeFormat = "" },
			wantField: "display.time_format",
		},
		{
			name:      "should reject a non-positive application timeout",
			modify:    func(c *Config) { c.Application.Timeout = -time.Second },
			wantField: "application.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cfg := NewConfig()
			tt.modify(cfg)

			// Act
			err := cfg.Validate()

			// Assert
			require.Error(t, err)
			configErr, ok := err.(*ConfigError)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, configErr.Field)
		})
	}

	t.Run("should accept the defaults", func(t *testing.T) {
		assert.NoError(t, NewConfig().Validate())
	})
}

func TestConfig_GetStatePath(t *testing.T) {
	// Arrange
	cfg := NewConfig()
	cfg.State.Dir = "/var/lib/tb"
	cfg.State.Filename = "state.db"

	// Act & Assert
	assert.Equal(t, filepath.Join("/var/lib/tb", "state.db"), cfg.GetStatePath())
	assert.Equal(t, filepath.Join("/var/lib/tb", "config.yaml"), cfg.GetConfigFilePath())
}
