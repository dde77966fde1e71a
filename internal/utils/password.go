package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way salted bcrypt hash from a raw password.
// The resulting string embeds the salt and cost and is safe to persist.
//
// Returns a wrapped error if bcrypt rejects the input (e.g. a password
// longer than 72 bytes).
func HashPassword(rawPassword string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword compares a stored bcrypt hash against a raw password
// candidate. It is the generic authenticate primitive used by the delivery
// layer during login; the service layer never re-derives password hashes.
//
// Returns nil on match or bcrypt's mismatch error otherwise.
func CheckPassword(passwordHash, rawPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(rawPassword))
}
