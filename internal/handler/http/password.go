package http

import "unicode"

const minPasswordLength = 8

// validateNewPassword applies the password acceptance rules at the trust
// boundary: a minimum length, a ban on entirely numeric values and an exact
// match with the confirmation field. The service layer receives only
// passwords that already passed these checks.
func validateNewPassword(password, confirmation string) error {
	if password != confirmation {
		return errPasswordMismatch
	}
	if len(password) < minPasswordLength {
		return errPasswordTooShort
	}
	if isEntirelyNumeric(password) {
		return errPasswordEntirelyNumeric
	}

	return nil
}

func isEntirelyNumeric(password string) bool {
	for _, r := range password {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(password) > 0
}
