package models

import "errors"

var (
	ErrConflictData       = errors.New("data conflicts with existing data")
	ErrDataNotFound       = errors.New("data not found")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrEmptyCredentials   = errors.New("username or password is empty")
	ErrEmptyOrderField    = errors.New("required order field is empty")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNoSnapshot         = errors.New("no telemetry snapshot")
	ErrReadingNotFound    = errors.New("telemetry reading not found")
)
