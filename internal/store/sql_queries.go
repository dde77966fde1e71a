package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/akorchagin/smart-water/models"
)

const (
	createAccount = `INSERT INTO accounts (email, password_hash, first_name, last_name, is_active, is_staff, is_superuser)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING account_id, created_at, updated_at;`

	createProfile = `INSERT INTO profiles (account_id, mobile_no, phone_no, address, organization)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING profile_id;`

	setAccountPassword = `UPDATE accounts
    SET password_hash = $1, updated_at = now()
    WHERE account_id = $2;`

	touchAccountLastLogin = `UPDATE accounts
    SET last_login_at = now(), updated_at = now()
    WHERE account_id = $1;`
)

// accountColumns lists the columns selected by the account lookup queries.
// Profile columns come from a LEFT JOIN and may be NULL when the account has
// no profile row.
var accountColumns = []string{
	"a.account_id", "a.email", "a.password_hash", "a.first_name", "a.last_name",
	"a.is_active", "a.is_staff", "a.is_superuser",
	"a.created_at", "a.updated_at", "a.last_login_at",
	"p.profile_id", "p.mobile_no", "p.phone_no", "p.address", "p.organization",
}

// buildFindAccountQuery assembles the account-with-profile SELECT restricted
// by the given predicate.
func buildFindAccountQuery(predicate sq.Sqlizer) (string, []any, error) {
	return sq.Select(accountColumns...).
		From("accounts a").
		LeftJoin("profiles p ON p.account_id = a.account_id").
		Where(predicate).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// byEmail matches an account by its normalized email.
func byEmail(email string) sq.Sqlizer {
	return sq.Eq{"lower(a.email)": models.NormalizeEmail(email)}
}

// byAccountID matches an account by its identifier.
func byAccountID(accountID int64) sq.Sqlizer {
	return sq.Eq{"a.account_id": accountID}
}

// buildUpdateProfileQuery assembles a partial profile UPDATE containing only
// the fields present in the update. The caller must reject empty updates
// before building.
func buildUpdateProfileQuery(accountID int64, update models.ProfileUpdate) (string, []any, error) {
	builder := sq.Update("profiles").
		Where(sq.Eq{"account_id": accountID}).
		Suffix("RETURNING profile_id, account_id, mobile_no, phone_no, address, organization").
		PlaceholderFormat(sq.Dollar)

	if update.MobileNo != nil {
		builder = builder.Set("mobile_no", *update.MobileNo)
	}
	if update.PhoneNo != nil {
		builder = builder.Set("phone_no", nullString(*update.PhoneNo))
	}
	if update.Address != nil {
		builder = builder.Set("address", nullString(*update.Address))
	}
	if update.Organization != nil {
		builder = builder.Set("organization", nullString(*update.Organization))
	}

	return builder.ToSql()
}

// nullString maps an empty string to SQL NULL for nullable text columns.
func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
