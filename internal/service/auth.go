package service

import (
	"context"
	"errors"

	"github.com/mkcho/brewstation/internal/auth"
	"github.com/mkcho/brewstation/internal/models"
)

// AuthService implements AuthService interface
type AuthService struct {
	repo  UserRepository
	token TokenService
}

// NewAuthService creates new AuthService instance
func NewAuthService(repo UserRepository, token TokenService) *AuthService {
	return &AuthService{
		repo:  repo,
		token: token,
	}
}

// Login verifies credentials and issues access token
func (as *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := as.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", models.ErrInvalidCredentials
	}

	return as.token.CreateToken(user)
}
