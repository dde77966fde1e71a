package main

import (
	"context"
	"fmt"

	"github.com/akorchagin/smart-water/internal/config"
	"github.com/akorchagin/smart-water/internal/crypto"
	"github.com/akorchagin/smart-water/internal/email"
	"github.com/akorchagin/smart-water/internal/handler"
	"github.com/akorchagin/smart-water/internal/logger"
	"github.com/akorchagin/smart-water/internal/server"
	"github.com/akorchagin/smart-water/internal/service"
	"github.com/akorchagin/smart-water/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("smart-water-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	tokenCodec := crypto.NewTokenCodec(cfg.App.ResetTokenKey, cfg.App.ResetTokenMaxAge)
	gateway := email.NewGateway(cfg.Email, cfg.App.BaseURL, log)

	services := service.NewServices(storages, tokenCodec, gateway, cfg, log)

	handlers, err := handler.NewHandlers(services, tokenCodec, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
