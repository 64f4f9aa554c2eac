package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	subject := uuid.New()

	token, err := CreateToken(subject, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, subject.String(), claims.SubjectID)
	assert.Equal(t, "admin", claims.Role)
}

func TestTokenSecretIsRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := CreateToken(uuid.New(), "admin")
	assert.ErrorIs(t, err, ErrMissingJWTSecret)

	_, err = ValidateToken("whatever")
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

// The secret is read per call, so a value set after process start (e.g.
// loaded from .env) is honored, and a token minted under one secret does
// not validate under another.
func TestTokenSecretReadLazily(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := CreateToken(uuid.New(), "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	claims, err := ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims, err := ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
