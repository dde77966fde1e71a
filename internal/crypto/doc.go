// Package crypto implements the stateless credential-reset primitives:
// the opaque account identifier codec used in reset links and the
// deterministic single-use reset token derived from mutable account state.
//
// Tokens are never persisted. A token stays valid until the account's
// password hash or last-login timestamp changes, or until it outlives the
// configured maximum age, whichever comes first.
package crypto
