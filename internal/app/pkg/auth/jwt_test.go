package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTGenerateValidate(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Generate(7, "admin", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Login)
	assert.True(t, claims.IsModerator)
	assert.Equal(t, "patientedu", claims.Issuer)
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").Generate(1, "user", false)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b").Validate(token)
	assert.Error(t, err)
}

func TestJWTGarbageToken(t *testing.T) {
	_, err := NewJWTService("s").Validate("not.a.token")
	assert.Error(t, err)
}
