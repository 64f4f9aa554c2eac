package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("om-mani-padme-hum")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, ComparePasswords(hash, "om-mani-padme-hum"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(16)
	require.NoError(t, err)
	assert.Len(t, token, 32) // hex doubles the byte length

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}
