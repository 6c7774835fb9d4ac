// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// appInfoService reports the build version and the capability listing. The
// listing never changes while the process runs, so it is built once.
type appInfoService struct {
	version      string
	capabilities models.Capabilities

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		version:      cfg.Version,
		capabilities: models.NewCapabilities(cfg.Version, store.HistoryCapacity),
		logger:       logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}

func (s *appInfoService) GetCapabilities(ctx context.Context) models.Capabilities {
	return s.capabilities
}
