package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akorchagin/smart-water/internal/config"
	"github.com/akorchagin/smart-water/internal/logger"
)

// recordingTransport captures the last message instead of delivering it.
type recordingTransport struct {
	lastMessage Message
	err         error
}

func (t *recordingTransport) Send(_ context.Context, msg Message) error {
	t.lastMessage = msg
	return t.err
}

func newTestGateway(transport Transport) *gateway {
	return &gateway{
		transport: transport,
		cfg: config.Email{
			FromName:  "Smart Water",
			FromEmail: "no-reply@smartwater.example",
		},
		baseURL: "https://smartwater.example",
		logger:  logger.Nop(),
	}
}

func TestSendPasswordResetEmail(t *testing.T) {
	transport := &recordingTransport{}
	g := newTestGateway(transport)

	err := g.SendPasswordResetEmail(context.Background(), "resident@example.com", "NDI", "abc123-tokensig")

	require.NoError(t, err)
	assert.Equal(t, "resident@example.com", transport.lastMessage.ToEmail)
	assert.Equal(t, "no-reply@smartwater.example", transport.lastMessage.FromEmail)
	assert.Equal(t, "Reset your Smart Water password", transport.lastMessage.Subject)
	assert.Contains(t, transport.lastMessage.TextBody,
		"https://smartwater.example/auth/password-reset/NDI/abc123-tokensig/")
}

func TestSendPasswordResetEmail_TransportError(t *testing.T) {
	transport := &recordingTransport{err: errors.New("connection refused")}
	g := newTestGateway(transport)

	err := g.SendPasswordResetEmail(context.Background(), "resident@example.com", "NDI", "token")

	require.Error(t, err)
}

func TestSendActivationEmail(t *testing.T) {
	transport := &recordingTransport{}
	g := newTestGateway(transport)

	err := g.SendActivationEmail(context.Background(), "resident@example.com", "Jamila")

	require.NoError(t, err)
	assert.Equal(t, "Welcome to Smart Water", transport.lastMessage.Subject)
	assert.Contains(t, transport.lastMessage.TextBody, "Hello Jamila")
}

func TestSendActivationEmail_NoFirstName(t *testing.T) {
	transport := &recordingTransport{}
	g := newTestGateway(transport)

	err := g.SendActivationEmail(context.Background(), "resident@example.com", "")

	require.NoError(t, err)
	assert.Contains(t, transport.lastMessage.TextBody, "Hello,")
}

func TestNewGateway_TransportSelection(t *testing.T) {
	t.Run("smtp by default", func(t *testing.T) {
		g := NewGateway(config.Email{Transport: "smtp"}, "https://smartwater.example/", logger.Nop())

		impl, ok := g.(*gateway)
		require.True(t, ok)
		assert.IsType(t, &SMTPTransport{}, impl.transport)
		assert.Equal(t, "https://smartwater.example", impl.baseURL)
	})

	t.Run("api when configured", func(t *testing.T) {
		g := NewGateway(config.Email{Transport: "api"}, "https://smartwater.example", logger.Nop())

		impl, ok := g.(*gateway)
		require.True(t, ok)
		assert.IsType(t, &APITransport{}, impl.transport)
	})
}
