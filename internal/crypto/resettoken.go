package crypto

import (
	"crypto/subtle"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akorchagin/smart-water/internal/utils"
	"github.com/akorchagin/smart-water/models"
)

// TokenCodec issues and verifies password-reset tokens of the form
// "<timestamp-base36>-<signature-hex>". The signature is an HMAC-SHA256 over
// the account's identity and mutable secret state, so any successful password
// change or login invalidates every outstanding token without server-side
// bookkeeping.
type TokenCodec struct {
	key    string
	maxAge time.Duration
	now    func() time.Time
}

// NewTokenCodec creates a TokenCodec with the given signing key and maximum
// token age.
func NewTokenCodec(key string, maxAge time.Duration) *TokenCodec {
	return &TokenCodec{key: key, maxAge: maxAge, now: time.Now}
}

// Issue derives a reset token bound to the account's current state.
func (c *TokenCodec) Issue(account models.Account) string {
	timestamp := strconv.FormatInt(c.now().Unix(), 36)
	return timestamp + "-" + c.sign(timestamp, account)
}

// Verify checks a token against the account's current state. Returns
// ErrInvalidToken when the token is malformed, was issued against different
// account state, or is older than the configured maximum age.
func (c *TokenCodec) Verify(account models.Account, token string) error {
	timestamp, signature, found := strings.Cut(token, "-")
	if !found || timestamp == "" || signature == "" {
		return ErrInvalidToken
	}

	expected := c.sign(timestamp, account)
	if subtle.ConstantTimeCompare([]byte(signature), []byte(expected)) != 1 {
		return ErrInvalidToken
	}

	issuedAt, err := strconv.ParseInt(timestamp, 36, 64)
	if err != nil {
		return ErrInvalidToken
	}
	if c.now().Sub(time.Unix(issuedAt, 0)) > c.maxAge {
		return ErrInvalidToken
	}

	return nil
}

// sign computes the token signature over the issue timestamp and the
// account's identity and secret state.
func (c *TokenCodec) sign(timestamp string, account models.Account) string {
	lastLogin := ""
	if account.LastLoginAt != nil {
		lastLogin = strconv.FormatInt(account.LastLoginAt.UnixNano(), 10)
	}

	state := fmt.Sprintf("%d:%s:%s:%s", account.AccountID, account.PasswordHash, lastLogin, timestamp)

	return utils.HashString(state, c.key)
}
