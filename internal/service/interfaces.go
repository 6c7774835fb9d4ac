// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-qr-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// GenerationService turns a form and render options into a symbol.
type GenerationService interface {
	// Generate validates, builds, renders, composites and records one
	// symbol. Only one generation runs at a time; a concurrent call fails
	// with ErrGenerationInProgress.
	Generate(ctx context.Context, req models.GenerateRequest) (models.GenerateResult, error)

	// Download renders the request as a file in the given format without
	// touching history.
	Download(ctx context.Context, req models.GenerateRequest, format models.ExportFormat) (models.ExportFile, error)
}

// HistoryService exposes the generation log.
type HistoryService interface {
	List(ctx context.Context) models.HistoryLog
	Restore(ctx context.Context, id string) (models.RestoredGeneration, error)
	Clear(ctx context.Context) (models.HistoryLog, error)
	// Share hands the stored image of an entry to the share surface.
	Share(ctx context.Context, id string) error
}

// ShareService hands a PNG to the share surface or the clipboard.
type ShareService interface {
	// Share tries the share surface first and falls back to the clipboard.
	// It fails only when both fail.
	Share(ctx context.Context, png []byte, title string) error
	// Copy puts the PNG on the clipboard as a data URI.
	Copy(ctx context.Context, png []byte) error
}

// AppInfoService reports the build version and what the generator accepts.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetCapabilities(ctx context.Context) models.Capabilities
}

type idGenerator interface {
	Generate() string
}
