// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-budget-tracker/internal/adapter"
	"github.com/MKhiriev/go-budget-tracker/internal/client"
	"github.com/MKhiriev/go-budget-tracker/internal/config"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
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
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, rest, err := config.GetClientConfig(args)
	if err != nil {
		return err
	}

	log, logFile, err := logger.NewFileLogger("budget-client", cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage.SessionRepository, serverAdapter, cfg.Adapter.HTTPAddress)

	app, err := client.NewApp(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdout, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx, rest)
}
