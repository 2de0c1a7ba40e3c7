package auth

import (
	"unicode/utf8"

	"github.com/mkcho/brewstation/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt processes at most 72 bytes of the password
const maxPasswordBytes = 72

// truncatePassword cuts the password down to the bcrypt limit without
// splitting a multi-byte UTF-8 sequence.
func truncatePassword(password string) string {
	if len(password) <= maxPasswordBytes {
		return password
	}

	b := []byte(password)[:maxPasswordBytes]
	for len(b) > 0 && !utf8.Valid(b) {
		b = b[:len(b)-1]
	}

	return string(b)
}

// HashPassword hashes password using bcrypt
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", models.ErrEmptyCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(truncatePassword(password)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword compares plain password with stored hash
func VerifyPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(truncatePassword(password))) == nil
}
