package auth

import (
	"context"

	"github.com/das-hq/duty-backend-go/internal/config"
	"github.com/das-hq/duty-backend-go/internal/domain/auth"
	"github.com/das-hq/duty-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	admin      config.AdminConfig
	jwtService jwt.Service
}

func NewAuthService(admin config.AdminConfig, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		admin:      admin,
		jwtService: jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if req.Username != s.admin.Username {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(req.Username)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
