package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager() JWTManager {
	return JWTManager{
		Secret:          []byte("test-secret"),
		Issuer:          "test",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newManager()

	token, ttl, err := m.IssueAccessToken("user-1", "a@x.com", "user")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, ttl)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newManager()

	token, ttl, err := m.IssueRefreshToken("user-1", 3)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, ttl)

	claims, err := m.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, int64(3), claims.Generation)
}

func TestTokensAreUnique(t *testing.T) {
	m := newManager()

	first, _, err := m.IssueAccessToken("user-1", "a@x.com", "user")
	require.NoError(t, err)
	second, _, err := m.IssueAccessToken("user-1", "a@x.com", "user")
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "back-to-back tokens must differ")
}

func TestWrongSecretRejected(t *testing.T) {
	m := newManager()
	other := newManager()
	other.Secret = []byte("another-secret")

	token, _, err := m.IssueAccessToken("user-1", "a@x.com", "user")
	require.NoError(t, err)

	_, err = other.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	m := newManager()
	m.AccessTokenTTL = -time.Minute

	token, _, err := m.IssueAccessToken("user-1", "a@x.com", "user")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAccessTokenIsNotARefreshToken(t *testing.T) {
	m := newManager()

	// The claim shapes differ; parsing an access token as refresh must not
	// yield a usable generation for some other user.
	token, _, err := m.IssueRefreshToken("user-1", 5)
	require.NoError(t, err)

	claims, err := m.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.Generation)

	garbage := "eyJhbGciOiJIUzI1NiJ9.e30.invalid"
	_, err = m.ParseRefreshToken(garbage)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
