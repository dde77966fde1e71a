package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/akorchagin/smart-water/internal/logger"
	"github.com/akorchagin/smart-water/models"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository]. It handles account creation, lookup and credential
// updates against the "accounts" and "profiles" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateWithProfile persists the account and its profile inside a single
// transaction, so that no account row can exist without its profile row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyRegistered].
//     The unique index on lower(email) is the authoritative duplicate gate;
//     any pre-check above this layer is advisory only.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) CreateWithProfile(ctx context.Context, account models.Account, profile models.Profile) (models.Account, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateWithProfile").Msg("error: cannot begin transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	// create account row
	row := tx.QueryRowContext(ctx, createAccount,
		account.Email, account.PasswordHash, account.FirstName, account.LastName,
		account.IsActive, account.IsStaff, account.IsSuperuser)
	if err := row.Scan(&account.AccountID, &account.CreatedAt, &account.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateWithProfile").Msg("error: inserting account")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Account{}, ErrEmailAlreadyRegistered
		default:
			return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// create profile row in the same unit of work
	profile.AccountID = account.AccountID
	row = tx.QueryRowContext(ctx, createProfile,
		profile.AccountID, profile.MobileNo,
		nullString(profile.PhoneNo), nullString(profile.Address), nullString(profile.Organization))
	if err := row.Scan(&profile.ProfileID); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateWithProfile").Msg("error: inserting profile")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateWithProfile").Msg("error: cannot commit transaction")
		return models.Account{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	account.Profile = &profile
	return account, nil
}

// FindByEmail retrieves an account whose normalized email matches the given
// one, with its profile attached when present.
//
// Error handling:
//   - sql.ErrNoRows → [ErrAccountNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByEmail", byEmail(email))
}

// FindByID retrieves an account by its identifier, with its profile attached
// when present.
//
// Error handling mirrors [accountRepository.FindByEmail].
func (r *accountRepository) FindByID(ctx context.Context, accountID int64) (models.Account, error) {
	return r.findOne(ctx, "*accountRepository.FindByID", byAccountID(accountID))
}

// SetPassword replaces the stored password hash of the account. The caller
// supplies an already derived hash; plaintext never reaches this layer.
func (r *accountRepository) SetPassword(ctx context.Context, accountID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setAccountPassword, passwordHash, accountID)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.SetPassword").Msg("error: updating password hash")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return r.exactlyOneAccountAffected(result)
}

// TouchLastLogin stamps the account's last successful authentication time.
// Outstanding password-reset tokens are bound to this value and stop
// verifying once it changes.
func (r *accountRepository) TouchLastLogin(ctx context.Context, accountID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, touchAccountLastLogin, accountID)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.TouchLastLogin").Msg("error: updating last login")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return r.exactlyOneAccountAffected(result)
}

// UpdateProfile applies a partial update to the account's profile and returns
// the stored profile after the update.
//
// Error handling:
//   - empty update → [ErrBuildingSQLQuery].
//   - no profile row for the account → [ErrProfileNotFound].
func (r *accountRepository) UpdateProfile(ctx context.Context, accountID int64, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if update.IsZero() {
		return models.Profile{}, fmt.Errorf("%w: no profile fields to update", ErrBuildingSQLQuery)
	}

	query, args, err := buildUpdateProfileQuery(accountID, update)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateProfile").Msg("error: building update query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		profile      models.Profile
		phoneNo      sql.NullString
		address      sql.NullString
		organization sql.NullString
	)
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&profile.ProfileID, &profile.AccountID, &profile.MobileNo, &phoneNo, &address, &organization); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*accountRepository.UpdateProfile").Msg("error: scanning updated profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	profile.PhoneNo = phoneNo.String
	profile.Address = address.String
	profile.Organization = organization.String

	return profile, nil
}

// findOne runs the account-with-profile lookup restricted by the given
// predicate and scans the single expected row.
func (r *accountRepository) findOne(ctx context.Context, funcName string, predicate sq.Sqlizer) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindAccountQuery(predicate)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: building find query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		account      models.Account
		lastLogin    sql.NullTime
		profileID    sql.NullInt64
		mobileNo     sql.NullString
		phoneNo      sql.NullString
		address      sql.NullString
		organization sql.NullString
	)

	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&account.AccountID, &account.Email, &account.PasswordHash,
		&account.FirstName, &account.LastName,
		&account.IsActive, &account.IsStaff, &account.IsSuperuser,
		&account.CreatedAt, &account.UpdatedAt, &lastLogin,
		&profileID, &mobileNo, &phoneNo, &address, &organization)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error: scanning account row")
		return models.Account{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if lastLogin.Valid {
		account.LastLoginAt = &lastLogin.Time
	}
	if profileID.Valid {
		account.Profile = &models.Profile{
			ProfileID:    profileID.Int64,
			AccountID:    account.AccountID,
			MobileNo:     mobileNo.String,
			PhoneNo:      phoneNo.String,
			Address:      address.String,
			Organization: organization.String,
		}
	}

	return account, nil
}

// exactlyOneAccountAffected maps a zero-row UPDATE to [ErrAccountNotFound].
func (r *accountRepository) exactlyOneAccountAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
