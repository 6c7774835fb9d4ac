// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
)

const shareFileName = "qrcode.png"

type httpSharer struct {
	client   *utils.HTTPClient
	shareURL string

	logger *logger.Logger
}

// NewHTTPSharer constructs a [Sharer] that posts the PNG as a multipart form
// ("file" part plus a "title" field) to cfg.ShareURL. An empty ShareURL
// yields a sharer that always reports [ErrShareUnavailable].
func NewHTTPSharer(cfg config.Adapter, log *logger.Logger) (Sharer, error) {
	shareURL := strings.TrimSpace(cfg.ShareURL)
	if shareURL != "" {
		u, err := url.Parse(shareURL)
		if err != nil {
			return nil, fmt.Errorf("invalid share url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("invalid share url: must include host and scheme")
		}
	}

	return &httpSharer{client: utils.NewHTTPClient(cfg.RequestTimeout), shareURL: shareURL, logger: log}, nil
}

func (h *httpSharer) Share(ctx context.Context, png []byte, title string) error {
	if h.shareURL == "" {
		return ErrShareUnavailable
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", shareFileName, bytes.NewReader(png)).
		SetMultipartFormData(map[string]string{"title": title}).
		Post(h.shareURL)
	if err != nil {
		h.logger.Err(err).Str("func", "httpSharer.Share").Msg("share request failed")
		return fmt.Errorf("%w: %w", ErrShareFailed, err)
	}

	if err = checkShareResponse(resp); err != nil {
		h.logger.Err(err).Str("func", "httpSharer.Share").Int("status", resp.StatusCode()).Msg("share endpoint rejected upload")
		return fmt.Errorf("%w: %w", ErrShareFailed, err)
	}

	h.logger.Debug().Str("func", "httpSharer.Share").Int("bytes", len(png)).Msg("symbol shared")
	return nil
}
