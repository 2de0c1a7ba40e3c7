package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/mkcho/brewstation/internal/models"
	"github.com/mkcho/brewstation/internal/repository/postgres"
)

const (
	insertUserQuery = `
						INSERT INTO users (username, password_hash)
						values ($1, $2)
						RETURNING id, username, password_hash, created_at
`
	selectUserByUsernameQuery = `
						SELECT id, username, password_hash, created_at FROM users
						WHERE username = $1
`
)

// UserRepository implements UserRepository interface
type UserRepository struct {
	db *postgres.DB
}

// NewUserRepository creates new UserRepository instance
func NewUserRepository(db *postgres.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts new user to database
func (ur *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	err := ur.db.QueryRow(ctx, insertUserQuery, user.Username, user.PasswordHash).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errCode := ur.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return user, nil
}

// GetUserByUsername returns user by username
func (ur *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := models.User{}
	err := ur.db.QueryRow(ctx, selectUserByUsernameQuery, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}
