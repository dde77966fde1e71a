package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/akorchagin/smart-water/internal/config"
	"github.com/akorchagin/smart-water/internal/logger"
)

// gateway is the default [Gateway] implementation. It composes plain-text
// notifications and hands them to the configured transport.
type gateway struct {
	transport Transport
	cfg       config.Email
	baseURL   string
	logger    *logger.Logger
}

// NewGateway builds a [Gateway] from the email configuration. The transport
// is selected by cfg.Transport; baseURL is the public origin used to build
// links embedded in mail.
func NewGateway(cfg config.Email, baseURL string, log *logger.Logger) Gateway {
	var transport Transport
	switch cfg.Transport {
	case "api":
		transport = NewAPITransport(cfg.API)
	default:
		transport = NewSMTPTransport(cfg.SMTP)
	}

	log.Debug().Str("transport", cfg.Transport).Msg("creating email gateway")

	return &gateway{
		transport: transport,
		cfg:       cfg,
		baseURL:   strings.TrimRight(baseURL, "/"),
		logger:    log,
	}
}

// SendPasswordResetEmail implements [Gateway].
func (g *gateway) SendPasswordResetEmail(ctx context.Context, toEmail, encodedID, token string) error {
	resetURL := fmt.Sprintf("%s/auth/password-reset/%s/%s/", g.baseURL, encodedID, token)

	body := strings.Join([]string{
		"You're receiving this email because you requested a password reset for your Smart Water account.",
		"",
		"Please go to the following page and choose a new password:",
		"",
		resetURL,
		"",
		"If you didn't request this, you can safely ignore this email.",
		"Your password won't change until you set a new one.",
	}, "\n")

	return g.transport.Send(ctx, Message{
		FromName:  g.cfg.FromName,
		FromEmail: g.cfg.FromEmail,
		ToEmail:   toEmail,
		Subject:   "Reset your Smart Water password",
		TextBody:  body,
	})
}

// SendActivationEmail implements [Gateway].
func (g *gateway) SendActivationEmail(ctx context.Context, toEmail, firstName string) error {
	greeting := "Hello"
	if firstName != "" {
		greeting = "Hello " + firstName
	}

	body := strings.Join([]string{
		greeting + ",",
		"",
		"Your Smart Water account is now active.",
		"You can sign in with your email address and the password you chose at registration.",
	}, "\n")

	return g.transport.Send(ctx, Message{
		FromName:  g.cfg.FromName,
		FromEmail: g.cfg.FromEmail,
		ToEmail:   toEmail,
		Subject:   "Welcome to Smart Water",
		TextBody:  body,
	})
}
