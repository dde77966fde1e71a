package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akorchagin/smart-water/internal/config"
)

func TestAPITransport_Send(t *testing.T) {
	var received apiMessage
	var authorization string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	transport := NewAPITransport(config.MailAPI{Endpoint: server.URL, Key: "provider-key"})

	err := transport.Send(context.Background(), Message{
		FromName:  "Smart Water",
		FromEmail: "no-reply@smartwater.example",
		ToEmail:   "resident@example.com",
		Subject:   "Reset your Smart Water password",
		TextBody:  "body",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer provider-key", authorization)
	assert.Equal(t, "resident@example.com", received.To)
	assert.Equal(t, "Reset your Smart Water password", received.Subject)
}

func TestAPITransport_Send_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	transport := NewAPITransport(config.MailAPI{Endpoint: server.URL, Key: "bad-key"})

	err := transport.Send(context.Background(), Message{ToEmail: "resident@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
