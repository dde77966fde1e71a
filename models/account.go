package models

import (
	"strings"
	"time"
)

// Account represents a registered identity with credentials and
// authorization flags. Sensitive fields must never be exposed outside
// trusted boundaries.
type Account struct {
	// AccountID is the internal unique identifier of the account.
	// It is not exposed via JSON and is used only at the persistence layer
	// and in encoded form inside password-reset links.
	AccountID int64 `json:"-"`

	// Email is the unique account identifier used during authentication.
	// Uniqueness is case-insensitive; the value is normalized to lowercase
	// at every write.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the account password.
	// This value MUST be a one-way salted hash, never plaintext.
	PasswordHash string `json:"-"`

	// FirstName and LastName are the required display name parts.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// IsActive reports whether the account may log in.
	// Inactive accounts are rejected at login time.
	IsActive bool `json:"is_active"`

	// IsStaff grants access to the staff console.
	IsStaff bool `json:"is_staff"`

	// IsSuperuser grants unrestricted access.
	IsSuperuser bool `json:"is_superuser"`

	// CreatedAt is set once at creation and immutable thereafter.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every write to the account row.
	UpdatedAt time.Time `json:"-"`

	// LastLoginAt is the timestamp of the most recent successful login,
	// nil if the account has never logged in. Together with PasswordHash
	// it forms the mutable secret state that invalidates outstanding
	// password-reset tokens.
	LastLoginAt *time.Time `json:"-"`

	// Profile is the optional one-to-one extension record,
	// nil when it has not been loaded or does not exist.
	Profile *Profile `json:"profile,omitempty"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// NormalizeEmail lowercases and trims an email address so that lookups and
// writes agree on a single canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
