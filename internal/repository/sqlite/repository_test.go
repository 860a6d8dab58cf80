package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) *SQLiteStateRepository {
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestStateRepository_SaveAndLoadToken(t *testing.T) {
	// Arrange
	repo := setupTestRepository(t)
	ctx := context.Background()

	// Act
	err := repo.SaveToken(ctx, "token-one")
	require.NoError(t, err)
	token, err := repo.LoadToken(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "token-one", token)
}

func TestStateRepository_SaveToken_ReplacesPrevious(t *testing.T) {
	// Arrange
	repo := setupTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.SaveToken(ctx, "token-one"))

	// Act
	err := repo.SaveToken(ctx, "token-two")
	require.NoError(t, err)
	token, err := repo.LoadToken(ctx)

	// Assert: the single-row table holds only the latest token
	require.NoError(t, err)
	assert.Equal(t, "token-two", token)
}

func TestStateRepository_LoadToken_EmptyStore(t *testing.T) {
	// Arrange
	repo := setupTestRepository(t)

	// Act
	token, err := repo.LoadToken(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestStateRepository_ClearToken(t *testing.T) {
	// Arrange
	repo := setupTestRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.SaveToken(ctx, "token-one"))

	// Act
	err := repo.ClearToken(ctx)
	require.NoError(t, err)
	token, err := repo.LoadToken(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestStateRepository_ClearToken_EmptyStore(t *testing.T) {
	// Arrange
	repo := setupTestRepository(t)

	// Act & Assert: clearing an empty store is not an error
	assert.NoError(t, repo.ClearToken(context.Background()))
}

func TestStateRepository_TokenSurvivesReopen(t *testing.T) {
	// Arrange
	dbPath := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	first, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.SaveToken(ctx, "persisted-token"))
	require.NoError(t, first.Close())

	// Act
	second, err := New(dbPath)
	require.NoError(t, err)
	defer second.Close()
	token, err := second.LoadToken(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "persisted-token", token)
}
