// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akorchagin/smart-water/internal/config"
	"github.com/akorchagin/smart-water/internal/crypto"
	"github.com/akorchagin/smart-water/internal/email"
	"github.com/akorchagin/smart-water/internal/logger"
	"github.com/akorchagin/smart-water/internal/store"
	"github.com/akorchagin/smart-water/internal/utils"
	"github.com/akorchagin/smart-water/models"
)

// userService is the concrete implementation of UserService. It owns the
// account lifecycle rules and delegates persistence to an AccountRepository,
// reset-token derivation to a crypto.TokenCodec and outbound mail to an
// email.Gateway.
type userService struct {
	// accountRepository is the data-access layer for accounts and profiles.
	accountRepository store.AccountRepository

	// tokenCodec derives and verifies stateless password-reset tokens.
	tokenCodec *crypto.TokenCodec

	// gateway sends account lifecycle mail. Delivery failures on the reset
	// path are logged and swallowed so responses stay uniform.
	gateway email.Gateway

	// tokenSignKey is the HMAC secret used to sign and verify login JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository,
// reset-token codec and mail gateway, with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(accountRepository store.AccountRepository, tokenCodec *crypto.TokenCodec, gateway email.Gateway, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		accountRepository: accountRepository,
		tokenCodec:        tokenCodec,
		gateway:           gateway,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Register creates a new account with its profile in one unit of work.
//
// The email is checked for availability first as an advisory pre-check with a
// friendlier failure mode; the repository's unique constraint remains the
// authoritative gate under concurrency. The password arrives pre-validated by
// the delivery layer and is hashed here before anything is persisted.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - store.ErrEmailAlreadyRegistered if the email is taken.
func (s *userService) Register(ctx context.Context, registration models.Registration) (models.Account, error) {
	log := logger.FromContext(ctx)

	if registration.Email == "" || registration.Password == "" ||
		registration.FirstName == "" || registration.LastName == "" ||
		registration.MobileNo == "" {
		log.Error().Str("email", registration.Email).Msg("invalid registration data provided")
		return models.Account{}, ErrInvalidDataProvided
	}

	account := registration.Account()

	// advisory duplicate check, the unique index has the final word
	if _, err := s.accountRepository.FindByEmail(ctx, account.Email); err == nil {
		return models.Account{}, store.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, store.ErrAccountNotFound) {
		log.Err(err).Str("email", account.Email).Msg("email availability check failed")
		return models.Account{}, fmt.Errorf("email availability check failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(registration.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Account{}, fmt.Errorf("password hashing failed: %w", err)
	}
	account.PasswordHash = passwordHash

	created, err := s.accountRepository.CreateWithProfile(ctx, account, registration.Profile())
	if err != nil {
		log.Err(err).Str("email", account.Email).Msg("account creation ended with error")
		return models.Account{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	if err := s.gateway.SendActivationEmail(ctx, created.Email, created.FirstName); err != nil {
		log.Err(err).Int64("accountID", created.AccountID).Msg("welcome email delivery failed")
	}

	return created, nil
}

// GetUserForLogin looks up the account for an email-based login attempt.
// Password and activity checks stay with the caller so that the lookup can
// also serve non-login flows.
func (s *userService) GetUserForLogin(ctx context.Context, email string) (models.Account, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		return models.Account{}, ErrInvalidDataProvided
	}

	account, err := s.accountRepository.FindByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("account search by email failed")
		return models.Account{}, fmt.Errorf("account search by email failed: %w", err)
	}

	return account, nil
}

// AccountByID returns the account with the given identifier.
func (s *userService) AccountByID(ctx context.Context, accountID int64) (models.Account, error) {
	log := logger.FromContext(ctx)

	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("accountID", accountID).Msg("account search by id failed")
		return models.Account{}, fmt.Errorf("account search by id failed: %w", err)
	}

	return account, nil
}

// StartPasswordReset issues a reset ticket bound to the account's current
// state and emails the reset link.
//
// Anti-enumeration: an unknown email and an inactive account both produce the
// zero ticket with a nil error. Mail delivery failures are logged and
// swallowed for the same reason. Only infrastructure failures of the lookup
// itself surface as errors.
func (s *userService) StartPasswordReset(ctx context.Context, emailAddress string) (models.ResetTicket, error) {
	log := logger.FromContext(ctx)

	if emailAddress == "" {
		return models.ResetTicket{}, ErrInvalidDataProvided
	}

	account, err := s.accountRepository.FindByEmail(ctx, emailAddress)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.ResetTicket{}, nil
	}
	if err != nil {
		log.Err(err).Msg("account search for password reset failed")
		return models.ResetTicket{}, fmt.Errorf("account search for password reset failed: %w", err)
	}
	if !account.IsActive {
		return models.ResetTicket{}, nil
	}

	ticket := models.ResetTicket{
		EncodedID: crypto.EncodeAccountID(account.AccountID),
		Token:     s.tokenCodec.Issue(account),
	}

	if err := s.gateway.SendPasswordResetEmail(ctx, account.Email, ticket.EncodedID, ticket.Token); err != nil {
		log.Err(err).Int64("accountID", account.AccountID).Msg("reset email delivery failed")
	}

	return ticket, nil
}

// FinishPasswordReset replaces the account password at the end of a verified
// reset flow. Token verification happens before this call; replacing the
// stored hash invalidates every token issued against the old state.
func (s *userService) FinishPasswordReset(ctx context.Context, accountID int64, newPassword string) error {
	return s.SetPassword(ctx, accountID, newPassword)
}

// SetPassword hashes and stores a new password for the account.
func (s *userService) SetPassword(ctx context.Context, accountID int64, newPassword string) error {
	log := logger.FromContext(ctx)

	if newPassword == "" {
		return ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Int64("accountID", accountID).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err := s.accountRepository.SetPassword(ctx, accountID, passwordHash); err != nil {
		log.Err(err).Int64("accountID", accountID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	return nil
}

// RecordLogin stamps the moment of a successful authentication.
func (s *userService) RecordLogin(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	if err := s.accountRepository.TouchLastLogin(ctx, accountID); err != nil {
		log.Err(err).Int64("accountID", accountID).Msg("recording login failed")
		return fmt.Errorf("recording login failed: %w", err)
	}

	return nil
}

// UpdateProfile applies a partial profile update.
//
// Returns ErrInvalidDataProvided for an empty update or when the update
// tries to clear the required mobile number.
func (s *userService) UpdateProfile(ctx context.Context, accountID int64, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if update.IsZero() {
		return models.Profile{}, ErrInvalidDataProvided
	}
	if update.MobileNo != nil && *update.MobileNo == "" {
		return models.Profile{}, ErrInvalidDataProvided
	}

	profile, err := s.accountRepository.UpdateProfile(ctx, accountID, update)
	if err != nil {
		log.Err(err).Int64("accountID", accountID).Msg("profile update failed")
		return models.Profile{}, fmt.Errorf("profile update failed: %w", err)
	}

	return profile, nil
}

// CreateToken issues a signed JWT for the given account.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (s *userService) CreateToken(ctx context.Context, account models.Account) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, account.AccountID, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (s *userService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
