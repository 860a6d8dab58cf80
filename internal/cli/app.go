package cli

import (
	"time"

	"taskboard/internal/api"
	"taskboard/internal/config"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	api    api.API
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

// FormatTime renders a timestamp with the configured display format
func (a *App) FormatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(a.config.Display.TimeFormat)
}

// FormatDate renders a date-only timestamp
func (a *App) FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
