// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/validators"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// ── generate ─────────────────────────────────────────────────────────────────

func TestGenerate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := newTestAPI(t, ctrl)

	req := urlRequest("example.com")
	api.generation.EXPECT().Generate(gomock.Any(), req).Return(models.GenerateResult{
		DataURI:     "data:image/png;base64,AAAA",
		PayloadText: "https://example.com",
		Entry:       &models.HistoryEntry{ID: "entry-1"},
		Stages:      []models.GenerationState{models.GenerationIdle, models.GenerationDone},
	}, nil)

	rec := api.do(t, http.MethodPost, "/api/qr/generate", req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "data:image/png;base64,AAAA", body.Image)
	assert.Equal(t, "https://example.com", body.PayloadText)
	assert.Equal(t, "entry-1", body.EntryID)
	assert.Equal(t, []models.GenerationState{models.GenerationIdle, models.GenerationDone}, body.Stages)
}

func TestGenerate_NotPersisted_OmitsEntryID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := newTestAPI(t, ctrl)

	api.generation.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.GenerateResult{
		DataURI: "data:image/png;base64,AAAA",
	}, nil)

	rec := api.do(t, http.MethodPost, "/api/qr/generate", urlRequest("example.com"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "entry_id")
}

func TestGenerate_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := newTestAPI(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/qr/generate", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Error, ErrInvalidJSON.Error())
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantField  string
		wantError  string
	}{
		{
			name:       "validation with field",
			err:        fmt.Errorf("%w: %w", service.ErrValidation, &validators.FieldError{Field: validators.FieldURL, Err: validators.ErrInvalidURL}),
			wantStatus: http.StatusUnprocessableEntity,
			wantField:  validators.FieldURL,
		},
		{
			name:       "in progress",
			err:        service.ErrGenerationInProgress,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "encoding failure hides cause",
			err:        fmt.Errorf("%w: payload too long", service.ErrEncoding),
			wantStatus: http.StatusInternalServerError,
			wantError:  http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			api := newTestAPI(t, ctrl)

			api.generation.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.GenerateResult{}, tt.err)

			rec := api.do(t, http.MethodPost, "/api/qr/generate", urlRequest("example.com"))

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantField, body.Field)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body.Error)
			}
		})
	}
}

func TestGenerate_LogoTooLarge_CarriesAdjustment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := newTestAPI(t, ctrl)

	adjustment := models.LogoAdjustment{Requested: 150, Adjusted: 90}
	api.generation.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(models.GenerateResult{Adjustment: &adjustment}, &service.LogoAdjustmentError{Adjustment: adjustment})

	rec := api.do(t, http.MethodPost, "/api/qr/generate", urlRequest("example.com"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeError(t, rec)
	require.NotNil(t, body.Adjustment)
	assert.Equal(t, adjustment, *body.Adjustment)
	assert.Equal(t, validators.FieldLogoSize, body.Field)
}

// ── download ─────────────────────────────────────────────────────────────────

func TestDownload_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	api := newTestAPI(t, ctrl)

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`)
	api.generation.EXPECT().Download(gomock.Any(), gomock.Any(), models.ExportSVG).Return(models.ExportFile{
		Name:        "qrcode.svg",
		ContentType: "image/svg+xml",
		Data:        svg,
	}, nil)

	rec := api.do(t, http.MethodPost, "/api/qr/download/svg", urlRequest("example.com"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="qrcode.svg"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, svg, rec.Body.Bytes())
}

func TestDownload_Errors(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		err        error
		wantStatus int
	}{
		{
			name:       "unsupported format",
			format:     "gif",
			err:        fmt.Errorf("%w: %w", service.ErrValidation, service.ErrUnsupportedFormat),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "svg with logo",
			format:     "svg",
			err:        fmt.Errorf("%w: %w", service.ErrValidation, service.ErrVectorWithLogo),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid form",
			format:     "png",
			err:        service.ErrValidation,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			api := newTestAPI(t, ctrl)

			api.generation.EXPECT().
				Download(gomock.Any(), gomock.Any(), models.ExportFormat(tt.format)).
				Return(models.ExportFile{}, tt.err)

			rec := api.do(t, http.MethodPost, "/api/qr/download/"+tt.format, urlRequest("example.com"))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
