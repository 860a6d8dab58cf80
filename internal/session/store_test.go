package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/domain"
)

// mockStateRepository implements sqlite.StateRepository for testing
type mockStateRepository struct {
	token     string
	saveErr   error
	loadErr   error
	clearErr  error
	saveCalls int
}

func (m *mockStateRepository) SaveToken(ctx context.Context, token string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saveCalls++
	m.token = token
	return nil
}

func (m *mockStateRepository) LoadToken(ctx context.Context) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.token, nil
}

func (m *mockStateRepository) ClearToken(ctx context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.token = ""
	return nil
}

func (m *mockStateRepository) Close() error {
	return nil
}

func testProfile(role domain.Role) *domain.UserProfile {
	return &domain.UserProfile{
		ID:       "64f0c1a2b3d4e5f607182930",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     role,
	}
}

func TestStore_Login(t *testing.T) {
	// Arrange
	state := &mockStateRepository{}
	store := NewStore(state)

	// Act
	err := store.Login(context.Background(), "bearer-token", testProfile(domain.RoleManager))

	// Assert
	require.NoError(t, err)
	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "bearer-token", token)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "bearer-token", state.token)
	assert.Equal(t, domain.RoleManager, store.Role())
}

func TestStore_Login_PersistFailure(t *testing.T) {
	// Arrange
	state := &mockStateRepository{saveErr: fmt.Errorf("disk full")}
	store := NewStore(state)

	// Act
	err := store.Login(context.Background(), "bearer-token", testProfile(domain.RoleUser))

	// Assert: the session is not authenticated when the token cannot be kept
	assert.Error(t, err)
	assert.False(t, store.IsAuthenticated())
}

func TestStore_Logout(t *testing.T) {
	// Arrange
	state := &mockStateRepository{}
	store := NewStore(state)
	require.NoError(t, store.Login(context.Background(), "bearer-token", testProfile(domain.RoleUser)))

	// Act
	err := store.Logout(context.Background())

	// Assert
	require.NoError(t, err)
	assert.False(t, store.IsAuthenticated())
	_, ok := store.User()
	assert.False(t, ok)
	assert.Equal(t, "", state.token)
}

func TestStore_Logout_WhenLoggedOut(t *testing.T) {
	// Arrange
	store := NewStore(&mockStateRepository{})

	// Act & Assert: logging out twice is a no-op
	assert.NoError(t, store.Logout(context.Background()))
	assert.NoError(t, store.Logout(context.Background()))
}

func TestStore_Restore(t *testing.T) {
	t.Run("should restore a persisted token and confirm the profile", func(t *testing.T) {
		// Arrange
		state := &mockStateRepository{token: "persisted-token"}
		store := NewStore(state)

		// Act
		restored, err := store.Restore(context.Background(), func(ctx context.Context) (*domain.UserProfile, error) {
			return testProfile(domain.RoleAdmin), nil
		})

		// Assert
		require.NoError(t, err)
		assert.True(t, restored)
		assert.True(t, store.IsAuthenticated())
		user, ok := store.User()
		require.True(t, ok)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})

	t.Run("should stay authenticated when the profile fetch fails", func(t *testing.T) {
		// Arrange
		state := &mockStateRepository{token: "persisted-token"}
		store := NewStore(state)

		// Act
		restored, err := store.Restore(context.Background(), func(ctx context.Context) (*domain.UserProfile, error) {
			return nil, fmt.Errorf("connection refused")
		})

		// Assert: the token is kept and the profile remains unknown
		require.NoError(t, err)
		assert.True(t, restored)
		assert.True(t, store.IsAuthenticated())
		_, ok := store.User()
		assert.False(t, ok)
	})

	t.Run("should report nothing to restore on an empty store", func(t *testing.T) {
		// Arrange
		store := NewStore(&mockStateRepository{})

		// Act
		restored, err := store.Restore(context.Background(), nil)

		// Assert
		require.NoError(t, err)
		assert.False(t, restored)
		assert.False(t, store.IsAuthenticated())
	})

	t.Run("should fail when the state repository cannot be read", func(t *testing.T) {
		// Arrange
		store := NewStore(&mockStateRepository{loadErr: fmt.Errorf("database locked")})

		// Act
		restored, err := store.Restore(context.Background(), nil)

		// Assert
		assert.Error(t, err)
		assert.False(t, restored)
	})
}

func TestStore_Role(t *testing.T) {
	t.Run("should default to the least privileged role while the profile is unknown", func(t *testing.T) {
		// Arrange
		state := &mockStateRepository{token: "persisted-token"}
		store := NewStore(state)
		_, err := store.Restore(context.Background(), func(ctx context.Context) (*domain.UserProfile, error) {
			return nil, fmt.Errorf("connection refused")
		})
		require.NoError(t, err)

		// Act & Assert
		assert.Equal(t, domain.RoleUser, store.Role())
	})

	t.Run("should return the profile role once known", func(t *testing.T) {
		// Arrange
		store := NewStore(&mockStateRepository{})

		// Act
		store.SetUser(testProfile(domain.RoleManager))

		// Assert
		assert.Equal(t, domain.RoleManager, store.Role())
	})
}
