package crypto

import (
	"encoding/base64"
	"strconv"
)

// EncodeAccountID converts an account ID into the opaque URL-safe form
// embedded in password-reset links.
func EncodeAccountID(accountID int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(accountID, 10)))
}

// DecodeAccountID reverses EncodeAccountID. Returns ErrMalformedIdentifier
// for anything that is not a well-formed encoded account ID, including
// non-positive values.
func DecodeAccountID(encoded string) (int64, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return 0, ErrMalformedIdentifier
	}

	accountID, err := strconv.ParseInt(string(decoded), 10, 64)
	if err != nil || accountID <= 0 {
		return 0, ErrMalformedIdentifier
	}

	return accountID, nil
}
