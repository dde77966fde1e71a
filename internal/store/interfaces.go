package store

import (
	"context"

	"github.com/akorchagin/smart-water/models"
)

// AccountRepository is the persistence port for accounts and their profiles.
// Implementations own the authoritative uniqueness guarantee on email: a
// concurrent duplicate insert must surface as [ErrEmailAlreadyRegistered]
// regardless of any advisory pre-checks performed above this layer.
type AccountRepository interface {
	// CreateWithProfile persists a new account together with its profile in
	// a single transaction and returns the stored account with
	// server-assigned fields populated.
	CreateWithProfile(ctx context.Context, account models.Account, profile models.Profile) (models.Account, error)

	// FindByEmail returns the account (with profile, if present) whose
	// normalized email matches the given one.
	FindByEmail(ctx context.Context, email string) (models.Account, error)

	// FindByID returns the account (with profile, if present) with the
	// given identifier.
	FindByID(ctx context.Context, accountID int64) (models.Account, error)

	// SetPassword replaces the stored password hash of an account.
	SetPassword(ctx context.Context, accountID int64, passwordHash string) error

	// TouchLastLogin records the moment of a successful authentication.
	TouchLastLogin(ctx context.Context, accountID int64) error

	// UpdateProfile applies a partial update to the account's profile.
	UpdateProfile(ctx context.Context, accountID int64, update models.ProfileUpdate) (models.Profile, error)
}
