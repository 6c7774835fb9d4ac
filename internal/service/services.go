// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-qr-keeper/internal/adapter"
	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
)

type Services struct {
	GenerationService GenerationService
	HistoryService    HistoryService
	ShareService      ShareService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, sharer adapter.Sharer, clipboard adapter.Clipboard, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	share := NewShareService(sharer, clipboard, logger)

	return &Services{
		GenerationService: NewGenerationService(storages.History, logger),
		HistoryService:    NewHistoryService(storages.History, share, logger),
		ShareService:      share,
		AppInfoService:    appInfo,
	}, nil
}
