package email

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/akorchagin/smart-water/internal/config"
)

// APITransport delivers messages through an HTTP mail-provider API.
type APITransport struct {
	client   *resty.Client
	settings config.MailAPI
}

// apiMessage is the provider wire format for a single outbound message.
type apiMessage struct {
	FromName  string `json:"from_name,omitempty"`
	FromEmail string `json:"from_email"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
	TextBody  string `json:"text_body"`
}

// NewAPITransport creates a Transport posting messages to the configured
// provider endpoint with a bearer credential.
func NewAPITransport(settings config.MailAPI) *APITransport {
	client := resty.New().SetAuthToken(settings.Key)

	return &APITransport{
		client:   client,
		settings: settings,
	}
}

// Send implements [Transport].
func (t *APITransport) Send(ctx context.Context, msg Message) error {
	response, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(apiMessage{
			FromName:  msg.FromName,
			FromEmail: msg.FromEmail,
			To:        msg.ToEmail,
			Subject:   msg.Subject,
			TextBody:  msg.TextBody,
		}).
		Post(t.settings.Endpoint)
	if err != nil {
		return fmt.Errorf("mail api request: %w", err)
	}

	if response.IsError() {
		return fmt.Errorf("mail api responded with status %d", response.StatusCode())
	}

	return nil
}
