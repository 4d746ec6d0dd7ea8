package jwt

import (
	"testing"
	"time"

	"odontocare/config"

	"github.com/stretchr/testify/assert"
)

func newService(secret string, expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{Secret: secret, AccessExpiry: expiry})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := newService("test-secret", time.Hour)

	token, tokenID, err := service.GenerateAccessToken(7, "maria", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "maria", claims.Username)
	assert.Equal(t, "admin", claims.Rol)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newService("secret-a", time.Hour).GenerateAccessToken(1, "maria", "paciente")
	assert.NoError(t, err)

	_, err = newService("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	service := newService("test-secret", -time.Minute)

	token, _, err := service.GenerateAccessToken(1, "maria", "paciente")
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newService("test-secret", time.Hour).ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	service := newService("test-secret", time.Hour)

	_, first, err := service.GenerateAccessToken(1, "maria", "paciente")
	assert.NoError(t, err)
	_, second, err := service.GenerateAccessToken(1, "maria", "paciente")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
