package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkcho/brewstation/internal/models"
)

type UserService interface {
	// Register registers new user with hashed password
	Register(ctx context.Context, username, password string) (*models.User, error)
}

// UserHandler represents HTTP handler for user-related requests
type UserHandler struct {
	svc UserService
}

// NewUserHandler creates new UserHandler instance
func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterUser registers new user
func (uh *UserHandler) RegisterUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		defer r.Body.Close()

		_, err := uh.svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, models.ErrConflictData):
				writeError(w, http.StatusBadRequest, "Username already exists")
			case errors.Is(err, models.ErrEmptyCredentials):
				writeError(w, http.StatusBadRequest, "username and password are required")
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Status:  "success",
			Message: "User registered successfully",
		})
	}
}
