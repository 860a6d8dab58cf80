package main

import (
	"context"
	"fmt"
	"os"

	"taskboard/internal/api"
	"taskboard/internal/cli"
	"taskboard/internal/config"
	"taskboard/internal/repository/rest"
	"taskboard/internal/repository/sqlite"
	"taskboard/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration: defaults, config file, environment
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Make sure the state directory exists before opening the store
	if err := os.MkdirAll(cfg.State.Dir, os.FileMode(cfg.State.DirPermissions)); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	// Open the durable client-state store
	state, err := sqlite.New(cfg.GetStatePath())
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer state.Close()

	// Build the session store and the API client on top of it. The
	// client reads the token through the store on every request.
	sessions := session.NewStore(state)
	repo := rest.NewWithTimeout(cfg.API.BaseURL, sessions, cfg.API.Timeout)
	apiInstance := api.New(repo, sessions)

	// Restore any persisted session before the command runs. A failed
	// profile confirmation is tolerated; commands surface Unauthorized
	// themselves if the token turns out to be dead.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()
	if _, err := apiInstance.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	root := cli.NewRootCommand(apiInstance, cfg)
	return root.Execute()
}
