package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestTokenRoundtrip(t *testing.T) {
	Configure("test-secret", 60)

	token, err := GenerateToken("user-1", "user")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseToken_WrongSecret(t *testing.T) {
	Configure("secret-a", 60)
	token, err := GenerateToken("user-1", "user")
	require.NoError(t, err)

	Configure("secret-b", 60)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	Configure("test-secret", 60)
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}
