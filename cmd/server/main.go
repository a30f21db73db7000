package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/help-me-shop/internal/cache"
	"github.com/MKhiriev/help-me-shop/internal/config"
	"github.com/MKhiriev/help-me-shop/internal/handler"
	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/internal/server"
	"github.com/MKhiriev/help-me-shop/internal/service"
	"github.com/MKhiriev/help-me-shop/internal/store"
	"github.com/MKhiriev/help-me-shop/internal/utils"
	"github.com/MKhiriev/help-me-shop/internal/workers"
	"github.com/MKhiriev/help-me-shop/models"
)

const startupTimeout = 30 * time.Second

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("help-me-shop-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	queryCache, err := cache.Connect(ctx, cfg.Storage.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting cache")
	}
	defer queryCache.Close()

	storages := store.NewStorages(db, queryCache, utils.NewUUIDGenerator(), log)
	if err = storages.IdentityStorage.VerifyRoles(ctx, cfg.App.DefaultRole, models.RoleAdmin); err != nil {
		log.Fatal().Err(err).Msg("roles are not seeded")
	}

	utils.InitHasherPool(cfg.App.HashKey)

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var status workers.StatusSetter
	if handlers.GRPC != nil {
		status = handlers.GRPC
	}
	bgWorkers := workers.NewWorkers(db, queryCache, status, cfg.Workers, log)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
