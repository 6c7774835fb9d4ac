// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/utils"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type generateResponse struct {
	Image       string                   `json:"image"`
	PayloadText string                   `json:"payload_text"`
	EntryID     string                   `json:"entry_id,omitempty"`
	Stages      []models.GenerationState `json:"stages"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	req, err := decodeGenerateRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("kind", string(req.Form.Kind)).Int("size_px", req.Options.SizePx).Msg("generating symbol")

	result, err := h.services.GenerationService.Generate(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := generateResponse{
		Image:       result.DataURI,
		PayloadText: result.PayloadText,
		Stages:      result.Stages,
	}
	if result.Entry != nil {
		resp.EntryID = result.Entry.ID
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing generate response")
	}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	format := models.ExportFormat(chi.URLParam(r, "format"))

	req, err := decodeGenerateRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	file, err := h.services.GenerationService.Download(ctx, req, format)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteAttachment(w, file.Name, file.ContentType, file.Data); err != nil {
		log.Err(err).Msg("error writing exported file")
	}
}

func decodeGenerateRequest(w http.ResponseWriter, r *http.Request) (models.GenerateRequest, error) {
	var req models.GenerateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		return models.GenerateRequest{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return req, nil
}
