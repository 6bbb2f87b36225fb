package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("test-secret", 15*time.Minute, 72*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.NewString()

	token, err := m.GenerateAccessToken(userID, "a@example.com", "author")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, "author", claims.Role)
	assert.Equal(t, TypeAccess, claims.Type)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager()
	userID := uuid.NewString()

	token, tokenID, err := m.GenerateRefreshToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, tokenID, claims.ID)
	assert.Equal(t, TypeRefresh, claims.Type)
	assert.Empty(t, claims.Email)
}

func TestTokenTypeConfusionRejected(t *testing.T) {
	m := newTestManager()

	access, err := m.GenerateAccessToken(uuid.NewString(), "", "user")
	require.NoError(t, err)
	refresh, _, err := m.GenerateRefreshToken(uuid.NewString())
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	m := newTestManager()
	other := NewManager("different-secret", 15*time.Minute, 72*time.Hour)

	token, err := m.GenerateAccessToken(uuid.NewString(), "", "user")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("test-secret", -time.Minute, -time.Minute)

	token, err := m.GenerateAccessToken(uuid.NewString(), "", "user")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	m := newTestManager()

	_, err := m.ValidateToken("not.a.token")
	assert.Error(t, err)
}
