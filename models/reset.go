package models

// ResetTicket is the outcome of a password-reset initiation. For an unknown
// email the zero value is returned together with a nil error, so that callers
// cannot distinguish "no such account" from "email sent": the delivery layer
// must render an identical response on both paths.
type ResetTicket struct {
	// EncodedID is the url-safe encoded account identifier embedded in the
	// reset link. It is an obfuscation convenience, not authorization.
	EncodedID string `json:"-"`

	// Token is the deterministic, time-bound reset token bound to the
	// account's current secret state. It is never persisted.
	Token string `json:"-"`
}

// IsZero reports whether the ticket is the neutral no-op outcome.
func (t ResetTicket) IsZero() bool {
	return t.EncodedID == "" && t.Token == ""
}
