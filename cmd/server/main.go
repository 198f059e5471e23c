// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-tracker/internal/config"
	"github.com/MKhiriev/go-budget-tracker/internal/handler"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/server"
	"github.com/MKhiriev/go-budget-tracker/internal/service"
	"github.com/MKhiriev/go-budget-tracker/internal/store"
	"github.com/MKhiriev/go-budget-tracker/models"
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
		logger.NewLogger("budget-server", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "dev" && buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger("budget-server", cfg.Log.Level)
	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	return srv.RunServer()
}
