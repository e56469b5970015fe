package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	manager := NewTokenManager("test-secret")

	token, refreshToken, err := manager.GenerateAllTokens("a@b.com", "Ada", "Lovelace", "user-42")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, refreshToken)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "Ada", claims.FirstName)

	refreshClaims, err := manager.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-42", refreshClaims.UserID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	manager := NewTokenManager("test-secret")
	token, _, err := manager.GenerateAllTokens("a@b.com", "Ada", "Lovelace", "user-42")
	require.NoError(t, err)

	_, err = NewTokenManager("another-secret").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret")
	_, err := manager.ValidateToken("not-a-token")
	assert.Error(t, err)
}
