package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-server/internal/adapter"
	"github.com/MKhiriev/go-auth-server/internal/config"
	"github.com/MKhiriev/go-auth-server/internal/handler"
	"github.com/MKhiriev/go-auth-server/internal/logger"
	"github.com/MKhiriev/go-auth-server/internal/server"
	"github.com/MKhiriev/go-auth-server/internal/service"
	"github.com/MKhiriev/go-auth-server/internal/store"
)

const role = "go-auth-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(role, false).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(role, cfg.App.IsDevelopment())
	log.Debug().
		Str("env", cfg.App.Environment).
		Str("address", cfg.Server.HTTPAddress).
		Str("upload_provider", cfg.Upload.Provider).
		Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	uploader, err := adapter.NewImageUploader(ctx, cfg.Upload, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating image uploader")
	}

	services, err := service.NewServices(storages, uploader, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("error running server")
	}
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
