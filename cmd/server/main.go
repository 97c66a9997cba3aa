package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-estate-api/internal/config"
	"github.com/MKhiriev/go-estate-api/internal/crypto"
	"github.com/MKhiriev/go-estate-api/internal/handler"
	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/MKhiriev/go-estate-api/internal/server"
	"github.com/MKhiriev/go-estate-api/internal/service"
	"github.com/MKhiriev/go-estate-api/internal/store"
	"github.com/MKhiriev/go-estate-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-estate-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("go-estate-server", cfg.App.LogLevel)
	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("addr", cfg.Server.HTTPAddress).
		Str("not_found_policy", cfg.App.NotFoundPolicy).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	hasher, err := crypto.NewPasswordHasher(cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating password hasher")
	}

	services, err := service.NewServices(storages, hasher, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
