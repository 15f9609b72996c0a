package services

import (
	"testing"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(config.AuthConfig{
		JWTSecret: "test-secret-that-is-at-least-32-characters",
		TokenTTL:  time.Hour,
		Issuer:    "movie-catalog-test",
	})
	require.NoError(t, err)
	return m
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager(config.AuthConfig{})
	assert.Error(t, err)
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	m := newTestTokenManager(t)

	token, err := m.Issue(&models.User{ID: 7, Username: "alice"})
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_Parse(t *testing.T) {
	m := newTestTokenManager(t)

	t.Run("expired", func(t *testing.T) {
		issued := time.Now().Add(-2 * time.Hour)
		m.now = func() time.Time { return issued }
		token, err := m.Issue(&models.User{ID: 1, Username: "bob"})
		require.NoError(t, err)
		m.now = time.Now

		_, err = m.Parse(token)
		require.ErrorIs(t, err, ErrUnauthorized)
		assert.True(t, IsTokenExpired(err))
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenManager(config.AuthConfig{
			JWTSecret: "another-secret-that-is-at-least-32-chars",
			TokenTTL:  time.Hour,
			Issuer:    "movie-catalog-test",
		})
		require.NoError(t, err)
		token, err := other.Issue(&models.User{ID: 1, Username: "bob"})
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: 1}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}
