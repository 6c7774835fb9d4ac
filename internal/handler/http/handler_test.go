// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/mock"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// testAPI bundles a router with the service mocks behind it.
type testAPI struct {
	router     http.Handler
	generation *mock.MockGenerationService
	history    *mock.MockHistoryService
	appInfo    *mock.MockAppInfoService
}

func newTestAPI(t *testing.T, ctrl *gomock.Controller) *testAPI {
	t.Helper()

	api := &testAPI{
		generation: mock.NewMockGenerationService(ctrl),
		history:    mock.NewMockHistoryService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		GenerationService: api.generation,
		HistoryService:    api.history,
		AppInfoService:    api.appInfo,
	}, logger.Nop())
	api.router = h.Init()

	return api
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func urlRequest(raw string) models.GenerateRequest {
	return models.GenerateRequest{
		Form:    models.FormModel{Kind: models.PayloadKindURL, URL: models.URLFields{URL: raw}},
		Options: models.DefaultRenderOptions(),
	}
}
