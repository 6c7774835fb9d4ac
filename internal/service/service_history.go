// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/payload"
	"github.com/MKhiriev/go-qr-keeper/internal/render"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type historyService struct {
	history store.HistoryStore
	share   ShareService

	logger *logger.Logger
}

func NewHistoryService(history store.HistoryStore, share ShareService, logger *logger.Logger) HistoryService {
	return &historyService{
		history: history,
		share:   share,
		logger:  logger,
	}
}

func (s *historyService) List(ctx context.Context) models.HistoryLog {
	return s.history.Load(ctx)
}

// Restore rebuilds the editable form of an entry from its payload text. The
// stored image and options come back even when the form cannot be rebuilt;
// events are never rebuilt.
func (s *historyService) Restore(ctx context.Context, id string) (models.RestoredGeneration, error) {
	log := logger.FromContext(ctx)

	entry, err := s.get(ctx, id)
	if err != nil {
		return models.RestoredGeneration{}, err
	}

	restored := models.RestoredGeneration{
		Form:          models.FormModel{Kind: entry.PayloadKind},
		Options:       entry.Options,
		RenderedImage: entry.RenderedImage,
	}

	form, err := payload.Parse(entry.PayloadKind, entry.PayloadText)
	if err != nil {
		log.Warn().Err(err).
			Str("func", "historyService.Restore").
			Str("entry_id", id).
			Str("kind", string(entry.PayloadKind)).
			Msg("payload not recognised, restoring image only")
		return restored, nil
	}

	restored.Form = form
	restored.Restored = entry.PayloadKind != models.PayloadKindEvent
	return restored, nil
}

func (s *historyService) Clear(ctx context.Context) (models.HistoryLog, error) {
	log, err := s.history.Clear(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "historyService.Clear").Msg("error clearing history")
		return log, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return log, nil
}

func (s *historyService) Share(ctx context.Context, id string) error {
	entry, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	png, err := render.DecodeDataURI(entry.RenderedImage)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "historyService.Share").Str("entry_id", id).Msg("stored image is not a png data uri")
		return fmt.Errorf("%w: %w", ErrShare, err)
	}

	return s.share.Share(ctx, png, entry.RawPayloadText)
}

func (s *historyService) get(ctx context.Context, id string) (models.HistoryEntry, error) {
	entry, err := s.history.Get(ctx, id)
	if errors.Is(err, store.ErrHistoryEntryNotFound) {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s", ErrHistoryEntryNotFound, id)
	}
	if err != nil {
		return models.HistoryEntry{}, err
	}
	return entry, nil
}
