// Package email implements the outbound notification gateway: message
// composition for account lifecycle mail and the transports that deliver it.
package email

import "context"

// Message is a fully composed plain-text email ready for delivery.
type Message struct {
	FromName  string
	FromEmail string
	ToEmail   string
	Subject   string
	TextBody  string
}

// Transport delivers a composed message over a concrete channel (SMTP
// submission or an HTTP mail-provider API).
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// Gateway composes and sends account lifecycle notifications. Callers decide
// whether delivery failures are fatal; the password-reset flow treats them as
// fire-and-forget.
type Gateway interface {
	// SendPasswordResetEmail delivers the reset link built from the encoded
	// account identifier and the reset token.
	SendPasswordResetEmail(ctx context.Context, toEmail, encodedID, token string) error

	// SendActivationEmail delivers the account activation notice. Accounts
	// are currently activated immediately at registration, so this is sent
	// as a welcome notice without any confirmation link.
	SendActivationEmail(ctx context.Context, toEmail, firstName string) error
}
