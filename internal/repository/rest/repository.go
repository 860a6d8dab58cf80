package rest

import "context"

// TokenSource supplies the bearer token for authenticated requests.
// The client calls it on every request so it always observes the most
// recent login or logout; no token is captured beyond a single request.
type TokenSource interface {
	Token() (string, bool)
}

// Repository defines the interface for remote API operations
type Repository interface {
	// Authentication operations
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, username, email, password string) (*User, error)

	// Profile operations
	GetProfile(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, payload ProfilePayload) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)

	// Task operations
	ListTasks(ctx context.Context) ([]*Task, error)
	GetTask(ctx context.Context, id string) (*Task, error)
	CreateTask(ctx context.Context, payload TaskPayload) (*Task, error)
	UpdateTask(ctx context.Context, id string, payload TaskPayload) (*Task, error)
	DeleteTask(ctx context.Context, id string) error

	// Aggregate operations
	GetStats(ctx context.Context) (*Stats, error)
}
