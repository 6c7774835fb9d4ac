// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSharer(t *testing.T, shareURL string) Sharer {
	t.Helper()
	s, err := NewHTTPSharer(config.Adapter{ShareURL: shareURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return s
}

// ── Share ───────────────────────────────────────────────────────────────────

func TestShare_Success(t *testing.T) {
	png := []byte("\x89PNG fake bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "example.com", r.FormValue("title"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, shareFileName, hdr.Filename)
		got, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, png, got)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := newTestSharer(t, srv.URL+"/upload").Share(context.Background(), png, "example.com")
	require.NoError(t, err)
}

func TestShare_StatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"too large", http.StatusRequestEntityTooLarge, ErrRequestTooLarge},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"unavailable", http.StatusServiceUnavailable, ErrServiceUnavailable},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			err := newTestSharer(t, srv.URL).Share(context.Background(), []byte("x"), "t")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrShareFailed)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestShare_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestSharer(t, srv.URL).Share(context.Background(), []byte("x"), "t")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestShare_RejectionReason(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"json error", `{"error":"quota exceeded"}`, "quota exceeded"},
		{"json message", `{"message":"slow down"}`, "slow down"},
		{"plain", "  try later \n", "try later"},
		{"empty", "", "Forbidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			err := newTestSharer(t, srv.URL).Share(context.Background(), []byte("x"), "t")
			require.ErrorIs(t, err, ErrForbidden)
			assert.True(t, strings.HasSuffix(err.Error(), ": "+tt.want), err.Error())
		})
	}
}

func TestShare_LongReasonIsTruncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(strings.Repeat("x", 500)))
	}))
	defer srv.Close()

	err := newTestSharer(t, srv.URL).Share(context.Background(), []byte("x"), "t")
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), strings.Repeat("x", maxReasonLen)+"...")
	assert.NotContains(t, err.Error(), strings.Repeat("x", maxReasonLen+1))
}

func TestShare_Unconfigured(t *testing.T) {
	err := newTestSharer(t, "").Share(context.Background(), []byte("x"), "t")
	assert.ErrorIs(t, err, ErrShareUnavailable)
}

func TestShare_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestSharer(t, url).Share(context.Background(), []byte("x"), "t")
	assert.ErrorIs(t, err, ErrShareFailed)
}

func TestNewHTTPSharer_InvalidURL(t *testing.T) {
	for _, raw := range []string{"example.com/upload", "://bad"} {
		_, err := NewHTTPSharer(config.Adapter{ShareURL: raw}, logger.Nop())
		assert.Error(t, err, raw)
	}
}
