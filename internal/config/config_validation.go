// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Defaults applied by applyDefaults when the merged configuration leaves a
// field unset.
const (
	defaultTokenIssuer      = "smart-water"
	defaultTokenDuration    = time.Hour
	defaultResetTokenMaxAge = 24 * time.Hour
	defaultRequestTimeout   = 30 * time.Second
	defaultEmailTransport   = "smtp"
)

// applyDefaults fills zero-valued fields with sane defaults after all
// sources have been merged. Secrets (sign key, reset key) and addresses are
// deliberately never defaulted; they must be provided explicitly.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.ResetTokenMaxAge == 0 {
		cfg.App.ResetTokenMaxAge = defaultResetTokenMaxAge
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Email.Transport == "" {
		cfg.Email.Transport = defaultEmailTransport
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.ResetTokenKey == "" {
		return ErrInvalidAppConfigs
	}

	switch cfg.Email.Transport {
	case "smtp", "api":
	default:
		return ErrInvalidEmailConfigs
	}

	return nil
}
