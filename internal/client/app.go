// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
)

// UI is the interactive front-end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.Services
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.Services, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errNilDependency
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run reports the history size, then hands control to the UI until it exits.
func (a *App) Run(ctx context.Context) error {
	entries := a.services.HistoryService.List(ctx)
	a.logger.Info().
		Str("version", a.services.AppInfoService.GetAppVersion(ctx)).
		Int("history_entries", len(entries)).
		Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
