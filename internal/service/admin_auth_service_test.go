package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"barberia/internal/repository"
)

func setupOwnerEnv(t *testing.T, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	t.Setenv("OWNER_EMAIL", "owner@barberia.test")
	t.Setenv("OWNER_PASSWORD_HASH", string(hash))
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoginIssuesValidToken(t *testing.T) {
	setupOwnerEnv(t, "secreto")
	svc := NewAdminAuthService(repository.NewAdminAuthRepository())

	tokenString, err := svc.Login("owner@barberia.test", "secreto")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "owner@barberia.test", claims["email"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	setupOwnerEnv(t, "secreto")
	svc := NewAdminAuthService(repository.NewAdminAuthRepository())

	_, err := svc.Login("owner@barberia.test", "wrong")
	assert.Error(t, err)

	_, err = svc.Login("someone@else.test", "secreto")
	assert.Error(t, err)
}
