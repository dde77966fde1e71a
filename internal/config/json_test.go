package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "smart-water",
			"token_duration": "45m",
			"reset_token_key": "reset_secret",
			"reset_token_max_age": "12h",
			"base_url": "https://water.example.gov",
			"version": "0.9.0"
		},
		"storage": {"db": {"dsn": "postgres://localhost/smartwater"}},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "15s"},
		"email": {
			"transport": "api",
			"from_email": "no-reply@water.example.gov",
			"api": {"endpoint": "https://mail.example.com/send", "key": "k"}
		}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "smart-water", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "reset_secret", cfg.App.ResetTokenKey)
	assert.Equal(t, 12*time.Hour, cfg.App.ResetTokenMaxAge)
	assert.Equal(t, "https://water.example.gov", cfg.App.BaseURL)
	assert.Equal(t, "postgres://localhost/smartwater", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "api", cfg.Email.Transport)
	assert.Equal(t, "https://mail.example.com/send", cfg.Email.API.Endpoint)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTempJSON(t, `{not json`)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{name: "string form", input: `"1h30m"`, expected: 90 * time.Minute},
		{name: "numeric nanoseconds", input: `1000000000`, expected: time.Second},
		{name: "garbage", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			App: App{
				TokenSignKey:  "sign",
				ResetTokenKey: "reset",
			},
			Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
			Server:  Server{HTTPAddress: "localhost:8080"},
			Email:   Email{Transport: "smtp"},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		require.NoError(t, valid().validate())
	})

	t.Run("missing DSN", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DB.DSN = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("missing address", func(t *testing.T) {
		cfg := valid()
		cfg.Server.HTTPAddress = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
	})

	t.Run("missing keys", func(t *testing.T) {
		cfg := valid()
		cfg.App.ResetTokenKey = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
	})

	t.Run("bad email transport", func(t *testing.T) {
		cfg := valid()
		cfg.Email.Transport = "carrier-pigeon"
		assert.ErrorIs(t, cfg.validate(), ErrInvalidEmailConfigs)
	})
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaultResetTokenMaxAge, cfg.App.ResetTokenMaxAge)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultEmailTransport, cfg.Email.Transport)
}
