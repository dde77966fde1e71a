package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyRegistered is returned when an attempt to create a new
	// account fails because an account with the same normalized email already
	// exists in the database.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrAccountNotFound is returned when a query expected to match exactly
	// one account produces an empty result set.
	ErrAccountNotFound = errors.New("account not found")

	// ErrProfileNotFound is returned when a profile update targets an account
	// that has no profile row.
	ErrProfileNotFound = errors.New("profile not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan account row")
)
