// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-qr-keeper/internal/adapter"
	"github.com/MKhiriev/go-qr-keeper/internal/client"
	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
	"github.com/MKhiriev/go-qr-keeper/internal/tui"
	"github.com/MKhiriev/go-qr-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewClientLogger("qr-keeper-client", os.Getenv("QR_KEEPER_LOG"))
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		exit(log, err, "error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		exit(log, err, "create history storage")
	}
	defer storages.Close()

	sharer, err := adapter.NewHTTPSharer(cfg.Adapter, log)
	if err != nil {
		exit(log, err, "create share adapter")
	}

	services, err := service.NewServices(storages, sharer, adapter.NewClipboard(), *cfg, log)
	if err != nil {
		exit(log, err, "create client services")
	}

	ui, err := tui.New(services, cfg.Export.Dir, buildInfo, log)
	if err != nil {
		exit(log, err, "error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		exit(log, err, "init client app error")
	}

	if err = app.Run(ctx); err != nil {
		exit(log, err, "client run error")
	}
}

// exit logs to the log file and also tells the user, whose terminal never
// shows log lines.
func exit(log *logger.Logger, err error, msg string) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
}
