package service

import (
	"context"
	"errors"

	"github.com/mkcho/brewstation/internal/auth"
	"github.com/mkcho/brewstation/internal/models"
)

// UserRepository is interface for interacting with user-related data
type UserRepository interface {
	// CreateUser stores new user
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByUsername returns user by username
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserService implements UserService interface
type UserService struct {
	repo UserRepository
}

// NewUserService creates new UserService instance
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register registers new user with hashed password
func (us *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, models.ErrEmptyCredentials
	}

	// check existing user
	if _, err := us.repo.GetUserByUsername(ctx, username); err == nil {
		return nil, models.ErrConflictData
	} else if !errors.Is(err, models.ErrDataNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
	}

	return us.repo.CreateUser(ctx, user)
}
