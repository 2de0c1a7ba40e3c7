package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/mkcho/brewstation/internal/models"
)

type AuthService interface {
	// Login verifies credentials and issues access token
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler represents HTTP handler for authentication requests
type AuthHandler struct {
	svc AuthService
}

// NewAuthHandler creates new AuthHandler instance
func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LoginUser authenticates user from the password form and returns
// bearer access token
func (ah *AuthHandler) LoginUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		token, err := ah.svc.Login(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, models.ErrInvalidCredentials) {
				writeError(w, http.StatusBadRequest, "Invalid username or password")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, tokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
