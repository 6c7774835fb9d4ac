// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
	"github.com/MKhiriev/go-qr-keeper/models"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid json", fmt.Errorf("%w: eof", ErrInvalidJSON), http.StatusBadRequest},
		{"empty id", ErrEmptyHistoryID, http.StatusBadRequest},
		{"validation", service.ErrValidation, http.StatusUnprocessableEntity},
		{"format wins over validation", fmt.Errorf("%w: %w", service.ErrValidation, service.ErrUnsupportedFormat), http.StatusBadRequest},
		{"logo too large", &service.LogoAdjustmentError{Adjustment: models.LogoAdjustment{Requested: 200, Adjusted: 90}}, http.StatusUnprocessableEntity},
		{"not found", service.ErrHistoryEntryNotFound, http.StatusNotFound},
		{"store not found", store.ErrHistoryEntryNotFound, http.StatusNotFound},
		{"in progress", service.ErrGenerationInProgress, http.StatusConflict},
		{"share and clipboard", errors.Join(service.ErrShare, service.ErrClipboard), http.StatusBadGateway},
		{"compositing", service.ErrCompositing, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusOrderCoversMap(t *testing.T) {
	assert.Len(t, statusOrder, len(errorStatusMap))
	for _, target := range statusOrder {
		_, ok := errorStatusMap[target]
		assert.True(t, ok, "missing status for %v", target)
	}
}
