package sqlite

import (
	"context"
	"database/sql"
	"time"

	"taskboard/internal/errors"

	_ "modernc.org/sqlite"
)

// schema holds the one durable key this client keeps: the bearer token.
// The single-row constraint guarantees a logout cannot leave a second
// token behind.
const schema = `
CREATE TABLE IF NOT EXISTS session_state (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	token TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// StateRepository defines the interface for durable client-side state
type StateRepository interface {
	// SaveToken persists the bearer token, replacing any previous one
	SaveToken(ctx context.Context, token string) error

	// LoadToken returns the persisted token, or "" when none is stored
	LoadToken(ctx context.Context) (string, error)

	// ClearToken removes the persisted token. Clearing an empty store
	// is a no-op, not an error.
	ClearToken(ctx context.Context) error

	// Utility
	Close() error
}

// SQLiteStateRepository implements the StateRepository interface
type SQLiteStateRepository struct {
	db *sql.DB
}

// New creates a new SQLite state repository instance
func New(dbPath string) (*SQLiteStateRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.NewStorageError("create schema", err)
	}

	return &SQLiteStateRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteStateRepository) Close() error {
	return r.db.Close()
}

// SaveToken persists the bearer token, replacing any previous one
func (r *SQLiteStateRepository) SaveToken(ctx context.Context, token string) error {
	query := `
	INSERT INTO session_state (id, token, updated_at)
	VALUES (1, ?, ?)
	ON CONFLICT(id) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, token, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return errors.NewStorageError("save token", err)
	}
	return nil
}

// LoadToken returns the persisted token, or "" when none is stored
func (r *SQLiteStateRepository) LoadToken(ctx context.Context) (string, error) {
	query := `
	SELECT token
	FROM session_state
	WHERE id = 1`

	var token string
	err := r.db.QueryRowContext(ctx, query).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", errors.NewStorageError("load token", err)
	}
	return token, nil
}

// ClearToken removes the persisted token
func (r *SQLiteStateRepository) ClearToken(ctx context.Context) error {
	query := `
	DELETE FROM session_state
	WHERE id = 1`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return errors.NewStorageError("clear token", err)
	}
	return nil
}
