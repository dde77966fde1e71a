package service

import (
	"context"

	"github.com/akorchagin/smart-water/models"
)

// UserService covers the account lifecycle: registration, login support,
// credential reset and profile maintenance.
type UserService interface {
	// Register creates a new active account together with its profile and
	// sends the welcome notice. Email uniqueness is enforced here
	// advisorily and authoritatively by the repository.
	Register(ctx context.Context, registration models.Registration) (models.Account, error)

	// GetUserForLogin returns the account for an email-based login attempt.
	// Password verification is the caller's concern.
	GetUserForLogin(ctx context.Context, email string) (models.Account, error)

	// AccountByID returns the account with the given identifier.
	AccountByID(ctx context.Context, accountID int64) (models.Account, error)

	// StartPasswordReset issues a reset ticket and emails the reset link.
	// For an unknown or inactive account it returns the zero ticket with a
	// nil error, so callers cannot probe for registered emails.
	StartPasswordReset(ctx context.Context, email string) (models.ResetTicket, error)

	// FinishPasswordReset replaces the account password at the end of a
	// verified reset flow.
	FinishPasswordReset(ctx context.Context, accountID int64, newPassword string) error

	// SetPassword replaces the account password for an authenticated
	// password change.
	SetPassword(ctx context.Context, accountID int64, newPassword string) error

	// RecordLogin stamps a successful authentication. As a side effect all
	// outstanding reset tokens for the account stop verifying.
	RecordLogin(ctx context.Context, accountID int64) error

	// UpdateProfile applies a partial profile update.
	UpdateProfile(ctx context.Context, accountID int64, update models.ProfileUpdate) (models.Profile, error)

	// CreateToken issues a signed login token for the account.
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)

	// ParseToken validates a raw login token string and extracts its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
