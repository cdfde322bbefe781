package main

import (
	"context"
	"fmt"

	"github.com/ashabalin/themeboard/internal/config"
	myHTTP "github.com/ashabalin/themeboard/internal/handler/http"
	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/internal/server"
	"github.com/ashabalin/themeboard/internal/service"
	"github.com/ashabalin/themeboard/internal/store"
	"github.com/ashabalin/themeboard/internal/validators"
	"github.com/ashabalin/themeboard/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("themeboard-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	rdb, err := store.NewConnectRedis(ctx, cfg.Storage.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to session store")
	}

	storages := store.NewStorages(db, rdb, cfg.App.SessionDuration, log)
	services := service.NewServices(storages, cfg.App, log)
	validate := validators.NewRequestValidator()

	handler := myHTTP.NewHandler(services, validate, cfg.Server.RequestTimeout, cfg.App.Version, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
