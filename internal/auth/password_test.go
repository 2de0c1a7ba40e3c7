package auth

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mkcho/brewstation/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, VerifyPassword("secret", hash))
	assert.False(t, VerifyPassword("wrong", hash))
	assert.False(t, VerifyPassword("", hash))
	assert.False(t, VerifyPassword("secret", ""))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	assert.ErrorIs(t, err, models.ErrEmptyCredentials)
}

func TestHashPassword_LongPassword(t *testing.T) {
	// bcrypt would reject anything over 72 bytes; truncation must make
	// hashing and verification agree on the same prefix
	long := strings.Repeat("a", 100)

	hash, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(long, hash))
}

func TestTruncatePassword_KeepsValidUTF8(t *testing.T) {
	// 3-byte runes placed so the 72-byte cut lands mid-sequence
	long := strings.Repeat("가", 30)

	truncated := truncatePassword(long)
	assert.LessOrEqual(t, len(truncated), maxPasswordBytes)
	assert.True(t, utf8.ValidString(truncated))
}
