package http

import (
	"github.com/akorchagin/smart-water/internal/crypto"
	"github.com/akorchagin/smart-water/internal/logger"
	"github.com/akorchagin/smart-water/internal/service"
)

type Handler struct {
	services   *service.Services
	tokenCodec *crypto.TokenCodec

	logger *logger.Logger
}

func NewHandler(services *service.Services, tokenCodec *crypto.TokenCodec, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		tokenCodec: tokenCodec,
		logger:     logger,
	}
}
