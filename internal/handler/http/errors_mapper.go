// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/store"
)

// errorStatusMap is matched in statusOrder so the most specific sentinel wins
// when an error wraps several of them.
var errorStatusMap = map[error]int{
	ErrInvalidJSON:    http.StatusBadRequest,
	ErrEmptyHistoryID: http.StatusBadRequest,

	service.ErrUnsupportedFormat:    http.StatusBadRequest,
	service.ErrVectorWithLogo:       http.StatusBadRequest,
	service.ErrValidation:           http.StatusUnprocessableEntity,
	service.ErrHistoryEntryNotFound: http.StatusNotFound,
	service.ErrGenerationInProgress: http.StatusConflict,
	service.ErrShare:                http.StatusBadGateway,
	service.ErrClipboard:            http.StatusBadGateway,
	service.ErrEncoding:             http.StatusInternalServerError,
	service.ErrCompositing:          http.StatusInternalServerError,
	service.ErrPersistence:          http.StatusInternalServerError,

	store.ErrHistoryEntryNotFound: http.StatusNotFound,
}

var statusOrder = []error{
	ErrInvalidJSON,
	ErrEmptyHistoryID,
	service.ErrUnsupportedFormat,
	service.ErrVectorWithLogo,
	service.ErrValidation,
	service.ErrHistoryEntryNotFound,
	store.ErrHistoryEntryNotFound,
	service.ErrGenerationInProgress,
	service.ErrShare,
	service.ErrClipboard,
	service.ErrEncoding,
	service.ErrCompositing,
	service.ErrPersistence,
}

func statusFromError(err error) int {
	for _, target := range statusOrder {
		if errors.Is(err, target) {
			return errorStatusMap[target]
		}
	}
	return http.StatusInternalServerError
}
