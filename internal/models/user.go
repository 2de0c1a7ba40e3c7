package models

import (
	"time"

	"github.com/google/uuid"
)

// User is user entity
type User struct {
	ID           uint64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// TokenPayload is payload of authorization token
type TokenPayload struct {
	ID       uuid.UUID
	UserID   uint64
	Username string
}
