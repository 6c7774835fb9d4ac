// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-keeper/internal/mock"
	"github.com/MKhiriev/go-qr-keeper/internal/render"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type testCLI struct {
	generation *mock.MockGenerationService
	history    *mock.MockHistoryService
	out        *bytes.Buffer
	dir        string
	closed     bool
}

func newTestCLI(t *testing.T, ctrl *gomock.Controller) *testCLI {
	t.Helper()

	return &testCLI{
		generation: mock.NewMockGenerationService(ctrl),
		history:    mock.NewMockHistoryService(ctrl),
		out:        &bytes.Buffer{},
		dir:        t.TempDir(),
	}
}

func (tc *testCLI) run(t *testing.T, args ...string) error {
	t.Helper()

	open := func(context.Context) (*cli, func(), error) {
		services := &service.Services{GenerationService: tc.generation, HistoryService: tc.history}
		return newCLI(services, tc.dir, tc.out), func() { tc.closed = true }, nil
	}

	root := newRootCmd(open)
	root.SetArgs(args)
	root.SetOut(tc.out)
	root.SetErr(tc.out)
	return root.ExecuteContext(context.Background())
}

// ── generate ─────────────────────────────────────────────────────────────────

func TestGenerate_WritesPNGAndRecordsHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tc := newTestCLI(t, ctrl)
	want := models.GenerateRequest{
		Form: models.FormModel{
			Kind: models.PayloadKindWifi,
			Wifi: models.WifiFields{SSID: "Home", Password: "p=w", Encryption: models.WifiEncryptionWPA},
		},
		Options: models.DefaultRenderOptions(),
	}
	tc.generation.EXPECT().Generate(gomock.Any(), want).Return(models.GenerateResult{
		Image:       []byte("png"),
		PayloadText: "WIFI:T:WPA;S:Home;P:p\\=w;H:false;;",
		Entry:       &models.HistoryEntry{ID: "e1"},
	}, nil)

	err := tc.run(t, "generate", "wifi", "-f", "ssid=Home", "-f", "password=p=w", "-f", "encryption=WPA")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(tc.dir, "qrcode.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
	assert.Contains(t, tc.out.String(), "History entry: e1")
	assert.True(t, tc.closed)
}

func TestGenerate_FormatFromOutDownloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tc := newTestCLI(t, ctrl)
	out := filepath.Join(tc.dir, "nested", "code.svg")
	tc.generation.EXPECT().Download(gomock.Any(), gomock.Any(), models.ExportSVG).
		Return(render.FileFor(models.ExportSVG, []byte("<svg/>")), nil)

	require.NoError(t, tc.run(t, "generate", "url", "--field", "url=https://example.com", "--out", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
}

func TestGenerate_NoHistoryUsesDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tc := newTestCLI(t, ctrl)
	tc.generation.EXPECT().Download(gomock.Any(), gomock.Any(), models.ExportPNG).
		Return(render.FileFor(models.ExportPNG, []byte("png")), nil)

	require.NoError(t, tc.run(t, "generate", "text", "-f", "text=hi", "--no-history"))
}

func TestGenerate_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tc := newTestCLI(t, ctrl)

	assert.ErrorContains(t, tc.run(t, "generate", "fax"), "unknown kind")
	assert.ErrorIs(t, tc.run(t, "generate", "url", "-f", "ssid=x"), models.ErrUnknownFormField)
	assert.ErrorIs(t, tc.run(t, "generate", "url", "-f", "novalue"), models.ErrInvalidFieldValue)
	assert.ErrorIs(t, tc.run(t, "generate", "url", "--format", "gif"), service.ErrUnsupportedFormat)
	assert.ErrorContains(t, tc.run(t, "generate", "url", "--logo", filepath.Join(tc.dir, "absent.png")), "read logo")
}

func TestGenerate_LogoTooLargeSuggestsSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tc := newTestCLI(t, ctrl)
	logo := filepath.Join(tc.dir, "logo.png")
	require.NoError(t, os.WriteFile(logo, []byte("img"), 0o600))

	tc.generation.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(models.GenerateResult{},
		&service.LogoAdjustmentError{Adjustment: models.LogoAdjustment{Requested: 200, Adjusted: 75}})

	err := tc.run(t, "generate", "url", "-f", "url=https://x.io", "--logo", logo, "--logo-size", "200")
	assert.ErrorIs(t, err, service.ErrLogoTooLarge)
	assert.ErrorContains(t, err, "--logo-size 75")
}

// ── history ──────────────────────────────────────────────────────────────────

func TestHistoryList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tc := newTestCLI(t, ctrl)
	tc.history.EXPECT().List(gomock.Any()).Return(models.HistoryLog{
		{ID: "b", PayloadKind: models.PayloadKindText, RawPayloadText: "second", CreatedAt: time.Now()},
		{ID: "a", PayloadKind: models.PayloadKindURL, RawPayloadText: "https://first", CreatedAt: time.Now()},
	})

	require.NoError(t, tc.run(t, "history", "list"))
	out := tc.out.String()
	assert.Contains(t, out, "second")
	assert.Less(t, bytes.Index(tc.out.Bytes(), []byte("second")), bytes.Index(tc.out.Bytes(), []byte("https://first")))
}

func TestHistoryList_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tc := newTestCLI(t, ctrl)
	tc.history.EXPECT().List(gomock.Any()).Return(nil)

	require.NoError(t, tc.run(t, "history", "list"))
	assert.Contains(t, tc.out.String(), "No codes generated yet.")
}

func TestHistoryClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tc := newTestCLI(t, ctrl)
	tc.history.EXPECT().Clear(gomock.Any()).Return(models.HistoryLog{}, nil)

	require.NoError(t, tc.run(t, "history", "clear"))
	assert.Contains(t, tc.out.String(), "History cleared.")
}

func TestHistoryRestore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tc := newTestCLI(t, ctrl)
	opts := models.DefaultRenderOptions()
	opts.Logo = &models.LogoOptions{SizePx: 60, Shape: models.LogoShapeCircle, Image: []byte("secret-bytes")}
	tc.history.EXPECT().Restore(gomock.Any(), "e1").Return(models.RestoredGeneration{
		Form:          models.FormModel{Kind: models.PayloadKindText, Text: models.TextFields{Text: "hello"}},
		Options:       opts,
		RenderedImage: render.DataURI([]byte("png")),
		Restored:      true,
	}, nil)

	out := filepath.Join(tc.dir, "restored.png")
	require.NoError(t, tc.run(t, "history", "restore", "e1", "-o", out))

	assert.Contains(t, tc.out.String(), `"hello"`)
	assert.NotContains(t, tc.out.String(), "c2VjcmV0")
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

func TestHistoryRestore_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tc := newTestCLI(t, ctrl)
	tc.history.EXPECT().Restore(gomock.Any(), "nope").Return(models.RestoredGeneration{}, service.ErrHistoryEntryNotFound)

	assert.ErrorIs(t, tc.run(t, "history", "restore", "nope"), service.ErrHistoryEntryNotFound)
}

func TestHistoryShare(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tc := newTestCLI(t, ctrl)
	tc.history.EXPECT().Share(gomock.Any(), "e1").Return(nil)

	require.NoError(t, tc.run(t, "history", "share", "e1"))
	assert.Contains(t, tc.out.String(), "Shared.")
}
