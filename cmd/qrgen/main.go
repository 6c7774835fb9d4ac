// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-qr-keeper/internal/adapter"
	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(openApp)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// openApp reads the config and wires the services. The caller must call the
// returned close func.
func openApp(ctx context.Context) (*cli, func(), error) {
	log := logger.NewClientLogger("qr-keeper-cli", os.Getenv("QR_KEEPER_LOG"))

	cfg, err := config.GetCommandConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "dev"
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history: %w", err)
	}

	sharer, err := adapter.NewHTTPSharer(cfg.Adapter, log)
	if err != nil {
		storages.Close()
		return nil, nil, fmt.Errorf("creating share adapter: %w", err)
	}

	services, err := service.NewServices(storages, sharer, adapter.NewClipboard(), *cfg, log)
	if err != nil {
		storages.Close()
		return nil, nil, fmt.Errorf("initializing services: %w", err)
	}

	closeFn := func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing history storage")
		}
	}
	return newCLI(services, cfg.Export.Dir, os.Stdout), closeFn, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			orNA := func(s string) string {
				if s == "" {
					return "N/A"
				}
				return s
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Build version: %s\n", orNA(buildVersion))
			fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", orNA(buildDate))
			fmt.Fprintf(cmd.OutOrStdout(), "Build commit: %s\n", orNA(buildCommit))
		},
	}
}
