package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("testpassword")
	assert.NoError(t, err)
	assert.NotEqual(t, "testpassword", hash)

	assert.True(t, CheckPasswordHash("testpassword", hash))
	assert.False(t, CheckPasswordHash("wrongpassword", hash))
}

func TestAccessTokenRoundtrip(t *testing.T) {
	secret := "your-secret-key"
	token, err := GenerateAccessToken("testuser", []string{"read:patients"}, secret, 30*time.Minute)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, scopes, err := ParseAccessToken(token, secret)
	assert.NoError(t, err)
	assert.Equal(t, "testuser", subject)
	assert.Equal(t, []string{"read:patients"}, scopes)
}

func TestAccessTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("testuser", nil, "your-secret-key", 30*time.Minute)
	assert.NoError(t, err)

	_, _, err = ParseAccessToken(token, "another-secret")
	assert.Error(t, err)
}

func TestAccessTokenRejectsExpired(t *testing.T) {
	token, err := GenerateAccessToken("testuser", nil, "your-secret-key", -time.Minute)
	assert.NoError(t, err)

	_, _, err = ParseAccessToken(token, "your-secret-key")
	assert.Error(t, err)
}
