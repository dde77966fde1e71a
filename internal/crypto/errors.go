package crypto

import "errors"

var (
	// ErrMalformedIdentifier is returned when an encoded account identifier
	// from a reset link cannot be decoded back to an account ID.
	ErrMalformedIdentifier = errors.New("malformed account identifier")

	// ErrInvalidToken is returned when a reset token fails verification:
	// wrong shape, signature mismatch, or expired.
	ErrInvalidToken = errors.New("invalid or expired reset token")
)
