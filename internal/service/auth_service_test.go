package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"escala-equipe/internal/config"
	"escala-equipe/internal/domain"
	"escala-equipe/internal/service"
	"escala-equipe/internal/store"
)

func authFixture(t *testing.T) service.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	users := store.NewUserStore([]domain.User{
		{ID: 1, Username: "admin", Name: "Admin User", PasswordHash: string(hash), Role: domain.RoleAdmin},
	})
	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
	}
	return service.NewAuthService(users, cfg)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc := authFixture(t)

	t.Run("Success", func(t *testing.T) {
		user, token, err := svc.Login(ctx, domain.LoginInput{Username: "admin", Password: "admin123"})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
		assert.NotEmpty(t, token.AccessToken)
		assert.Equal(t, int64(3600), token.ExpiresIn)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, domain.LoginInput{Username: "admin", Password: "nope"})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown User", func(t *testing.T) {
		_, _, err := svc.Login(ctx, domain.LoginInput{Username: "ghost", Password: "x"})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := authFixture(t)

	_, token, err := svc.Login(ctx, domain.LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-token")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})
}
