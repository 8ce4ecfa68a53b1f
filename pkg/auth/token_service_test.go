package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", "careerlane", time.Hour)

	token, err := svc.GenerateAccessToken("user-1", "a@b.com", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID.String())
	assert.Equal(t, "a@b.com", claims.Email.String())
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", "careerlane", -time.Minute)

	token, err := svc.GenerateAccessToken("user-1", "a@b.com", RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", "careerlane", time.Hour)
	verifier := NewTokenService("secret-b", "careerlane", time.Hour)

	token, err := issuer.GenerateAccessToken("user-1", "a@b.com", RoleUser)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	issuer := NewTokenService("test-secret", "someone-else", time.Hour)
	verifier := NewTokenService("test-secret", "careerlane", time.Hour)

	token, err := issuer.GenerateAccessToken("user-1", "a@b.com", RoleUser)
	require.NoError(t, err)

	_, err = verifier.ValidateAccessToken(token)
	require.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", "careerlane", time.Hour)

	_, err := svc.ValidateAccessToken("not-a-token")
	require.Error(t, err)
}

func TestRoleIsAdmin(t *testing.T) {
	assert.False(t, RoleUser.IsAdmin())
	assert.True(t, RoleAdmin.IsAdmin())
	assert.True(t, RoleSuperAdmin.IsAdmin())
}
