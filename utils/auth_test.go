package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-romeiro-server/config"
	"portal-romeiro-server/models"
)

func TestHashPasswordAndCheck(t *testing.T) {
	hash, err := HashPassword("romeiro-segredo-123")
	require.NoError(t, err)
	assert.Contains(t, hash, "pbkdf2:")

	assert.True(t, CheckPasswordHash("romeiro-segredo-123", hash))
	assert.False(t, CheckPasswordHash("senha-errada", hash))
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("mesma-senha")
	require.NoError(t, err)
	second, err := HashPassword("mesma-senha")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("mesma-senha", first))
	assert.True(t, CheckPasswordHash("mesma-senha", second))
}

func TestCheckPasswordHashRejectsMalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("qualquer", ""))
	assert.False(t, CheckPasswordHash("qualquer", "bcrypt:whatever"))
	assert.False(t, CheckPasswordHash("qualquer", "pbkdf2:nan:zz:zz"))
}

func TestGenerateAndVerifyToken(t *testing.T) {
	config.Load()

	token, err := GenerateToken(42, string(models.RoleAdmin))
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	config.Load()

	_, err := VerifyToken("not.a.token")
	assert.Error(t, err)
}
