package auth

import (
	"context"
	"testing"

	"github.com/das-hq/duty-backend-go/internal/config"
	"github.com/das-hq/duty-backend-go/internal/domain/auth"
	"github.com/das-hq/duty-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, password string) auth.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := config.AdminConfig{
		Username:     "admin",
		PasswordHash: string(hash),
	}
	jwtService := jwt.NewJWTService("test-secret-key", "8h")
	return NewAuthService(admin, jwtService)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, "correct-horse")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, "correct-horse")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "battery-staple",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_WrongUsername(t *testing.T) {
	t.Parallel()
	svc := newTestService(t, "correct-horse")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "root",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
