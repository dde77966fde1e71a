package service

import (
	"github.com/akorchagin/smart-water/internal/config"
	"github.com/akorchagin/smart-water/internal/crypto"
	"github.com/akorchagin/smart-water/internal/email"
	"github.com/akorchagin/smart-water/internal/logger"
	"github.com/akorchagin/smart-water/internal/store"
)

type Services struct {
	UserService UserService
}

func NewServices(storages *store.Storages, tokenCodec *crypto.TokenCodec, gateway email.Gateway, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(storages.AccountRepository, tokenCodec, gateway, cfg.App, logger),
	}
}
