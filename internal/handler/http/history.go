// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/models"
)

func (h *Handler) listHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entries := h.services.HistoryService.List(r.Context())

	if _, err := utils.WriteJSON(w, models.NewHistoryResponse(entries), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing history response")
	}
}

func (h *Handler) clearHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	entries, err := h.services.HistoryService.Clear(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Msg("history cleared")
	if _, err = utils.WriteJSON(w, models.NewHistoryResponse(entries), http.StatusOK); err != nil {
		log.Err(err).Msg("error writing history response")
	}
}

func (h *Handler) restoreHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := historyID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	restored, err := h.services.HistoryService.Restore(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("id", id).Bool("restored", restored.Restored).Msg("history entry restored")
	if _, err = utils.WriteJSON(w, restored, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing restore response")
	}
}

func (h *Handler) shareHistory(w http.ResponseWriter, r *http.Request) {
	id, err := historyID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.HistoryService.Share(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func historyID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", ErrEmptyHistoryID
	}
	return id, nil
}
