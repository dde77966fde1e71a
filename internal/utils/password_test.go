package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Success(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", 100))

	require.Error(t, err)
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)

	second, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, CheckPassword(hash, "correct horse battery staple"))
	})

	t.Run("mismatch", func(t *testing.T) {
		assert.Error(t, CheckPassword(hash, "wrong password"))
	})

	t.Run("not a bcrypt hash", func(t *testing.T) {
		assert.Error(t, CheckPassword("plain-text", "anything"))
	})
}
