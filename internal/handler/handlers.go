package handler

import (
	"github.com/akorchagin/smart-water/internal/config"
	"github.com/akorchagin/smart-water/internal/crypto"
	"github.com/akorchagin/smart-water/internal/handler/http"
	"github.com/akorchagin/smart-water/internal/logger"
	"github.com/akorchagin/smart-water/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, tokenCodec *crypto.TokenCodec, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, tokenCodec, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
