package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordWithCost(t *testing.T) {
	hash, err := HashPasswordWithCost("admin123", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "admin123", hash)
	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("admin124", hash))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestHashPasswordWithCostOutOfRange(t *testing.T) {
	hash, err := HashPasswordWithCost("patient123", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("s3cret", "user-1", "admin")
	require.NoError(t, err)

	claims, err := ValidateJWT("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(claims.IssuedAt.Time))
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("s3cret", "user-1", "admin")
	require.NoError(t, err)

	_, err = ValidateJWT("other", token)
	assert.Error(t, err)
}

func TestJWTMissingSecret(t *testing.T) {
	_, err := GenerateJWT("", "user-1", "admin")
	assert.ErrorIs(t, err, ErrMissingSecret)

	_, err = ValidateJWT("", "whatever")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
