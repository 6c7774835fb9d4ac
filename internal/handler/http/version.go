// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}

// getCapabilities lists kinds with their fields, export formats and slider
// bounds.
func (h *Handler) getCapabilities(w http.ResponseWriter, r *http.Request) {
	caps := h.services.AppInfoService.GetCapabilities(r.Context())

	if _, err := utils.WriteJSON(w, caps, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing capabilities")
	}
}
