// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/internal/adapter"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/render"
)

type shareService struct {
	sharer    adapter.Sharer
	clipboard adapter.Clipboard

	logger *logger.Logger
}

func NewShareService(sharer adapter.Sharer, clipboard adapter.Clipboard, logger *logger.Logger) ShareService {
	return &shareService{
		sharer:    sharer,
		clipboard: clipboard,
		logger:    logger,
	}
}

func (s *shareService) Share(ctx context.Context, png []byte, title string) error {
	log := logger.FromContext(ctx)

	shareErr := s.sharer.Share(ctx, png, title)
	if shareErr == nil {
		return nil
	}
	log.Info().Err(shareErr).Str("func", "shareService.Share").Msg("share unavailable, copying to clipboard")

	copyErr := s.clipboard.Copy(ctx, render.DataURI(png))
	if copyErr == nil {
		return nil
	}
	log.Err(copyErr).Str("func", "shareService.Share").Msg("clipboard fallback failed")

	return errors.Join(
		fmt.Errorf("%w: %w", ErrShare, shareErr),
		fmt.Errorf("%w: %w", ErrClipboard, copyErr),
	)
}

func (s *shareService) Copy(ctx context.Context, png []byte) error {
	if err := s.clipboard.Copy(ctx, render.DataURI(png)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "shareService.Copy").Msg("error copying to clipboard")
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}
	return nil
}
