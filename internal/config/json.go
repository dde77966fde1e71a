package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		ResetTokenKey    string   `json:"reset_token_key"`
		ResetTokenMaxAge Duration `json:"reset_token_max_age"`
		BaseURL          string   `json:"base_url"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Email struct {
		Transport string `json:"transport"`
		FromName  string `json:"from_name"`
		FromEmail string `json:"from_email"`

		SMTP struct {
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Username string `json:"username"`
			Password string `json:"password"`
			TLSMode  string `json:"tls_mode"`
		} `json:"smtp,omitempty"`

		API struct {
			Endpoint string `json:"endpoint"`
			Key      string `json:"key"`
		} `json:"api,omitempty"`
	} `json:"email,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			ResetTokenKey:    jsonCfg.App.ResetTokenKey,
			ResetTokenMaxAge: time.Duration(jsonCfg.App.ResetTokenMaxAge),
			BaseURL:          jsonCfg.App.BaseURL,
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Email: Email{
			Transport: jsonCfg.Email.Transport,
			FromName:  jsonCfg.Email.FromName,
			FromEmail: jsonCfg.Email.FromEmail,
			SMTP: SMTP{
				Host:     jsonCfg.Email.SMTP.Host,
				Port:     jsonCfg.Email.SMTP.Port,
				Username: jsonCfg.Email.SMTP.Username,
				Password: jsonCfg.Email.SMTP.Password,
				TLSMode:  jsonCfg.Email.SMTP.TLSMode,
			},
			API: MailAPI{
				Endpoint: jsonCfg.Email.API.Endpoint,
				Key:      jsonCfg.Email.API.Key,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
