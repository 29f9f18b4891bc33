package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash1, err := HashPassword("password123")
	require.NoError(t, err)
	hash2, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hash1)
	assert.NotEqual(t, hash1, hash2, "bcrypt salts every hash")

	assert.True(t, CheckPassword("password123", hash1))
	assert.True(t, CheckPassword("password123", hash2))
	assert.False(t, CheckPassword("wrong", hash1))
	assert.False(t, CheckPassword("password123", "not-a-hash"))
}

func TestTokenRoundTrip(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	token, err := service.CreateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := service.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestAuthenticateExpired(t *testing.T) {
	service := NewService("test-secret", -time.Hour)

	token, err := service.CreateToken(42)
	require.NoError(t, err)

	_, err = service.Authenticate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateMalformed(t *testing.T) {
	service := NewService("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := service.Authenticate(token)
		assert.ErrorIs(t, err, ErrInvalidToken, token)
	}
}

func TestAuthenticateWrongSecret(t *testing.T) {
	token, err := NewService("secret-one", time.Hour).CreateToken(42)
	require.NoError(t, err)

	_, err = NewService("secret-two", time.Hour).Authenticate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
