// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command server exposes QR generation, history and sharing over HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-qr-keeper/internal/adapter"
	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/handler"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/server"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
	"github.com/MKhiriev/go-qr-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("qr-keeper-server")
	if err := run(buildInfo, log); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

func run(buildInfo models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return err
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	log.Debug().Any("config", cfg).Msg("config loaded")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer storages.Close()

	sharer, err := adapter.NewHTTPSharer(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("share adapter: %w", err)
	}

	services, err := service.NewServices(storages, sharer, adapter.NewClipboard(), *cfg, log)
	if err != nil {
		return fmt.Errorf("services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return err
	}

	srv.RunServer()
	return nil
}
