// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/internal/validators"
	"github.com/MKhiriev/go-qr-keeper/models"
)

var (
	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
	// ErrEmptyHistoryID is reported when the id path segment is blank.
	ErrEmptyHistoryID = errors.New("empty history entry id")
)

// writeError logs err and writes it as an [models.ErrorResponse] with the
// status chosen by statusFromError. Server-side failures do not leak their
// cause to the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	body := models.ErrorResponse{Error: err.Error()}
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		body.Error = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		body.Field = fieldErr.Field
	}

	var adjErr *service.LogoAdjustmentError
	if errors.As(err, &adjErr) {
		adjustment := adjErr.Adjustment
		body.Adjustment = &adjustment
		body.Field = validators.FieldLogoSize
	}

	if _, wErr := utils.WriteJSON(w, body, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}
