// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-keeper/internal/mock"
	"github.com/MKhiriev/go-qr-keeper/internal/render"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/internal/validators"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type testApp struct {
	model      appModel
	generation *mock.MockGenerationService
	history    *mock.MockHistoryService
	share      *mock.MockShareService
}

func newTestApp(t *testing.T, ctrl *gomock.Controller) *testApp {
	t.Helper()

	a := &testApp{
		generation: mock.NewMockGenerationService(ctrl),
		history:    mock.NewMockHistoryService(ctrl),
		share:      mock.NewMockShareService(ctrl),
	}
	services := &service.Services{
		GenerationService: a.generation,
		HistoryService:    a.history,
		ShareService:      a.share,
	}
	a.model = newAppModel(context.Background(), services, t.TempDir(), models.NewAppBuildInfo("1.0.0", "", ""))
	a.model.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return a
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	got, ok := next.(appModel)
	require.True(t, ok)
	return got, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func urlRequest(link string) models.GenerateRequest {
	return models.GenerateRequest{
		Form:    models.FormModel{Kind: models.PayloadKindURL, URL: models.URLFields{URL: link}},
		Options: models.DefaultRenderOptions(),
	}
}

// ── navigation ───────────────────────────────────────────────────────────────

func TestAppModel_ChooseKindOpensForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestApp(t, ctrl).model
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenForm, m.currentScreen)
	assert.Equal(t, models.PayloadKinds[1], m.form.kind)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Equal(t, screenOptions, m.currentScreen)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenForm, m.currentScreen)
}

func TestAppModel_QuitFromKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestApp(t, ctrl).model
	m, cmd := update(t, m, runes("q"))

	require.NotNil(t, cmd)
	assert.ErrorIs(t, m.err, ErrUserQuit)
}

// ── generate ─────────────────────────────────────────────────────────────────

func TestAppModel_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl)
	req := urlRequest("https://example.com")
	a.generation.EXPECT().Generate(gomock.Any(), req).Return(models.GenerateResult{
		Image:       []byte("png"),
		PayloadText: "https://example.com",
		Entry:       &models.HistoryEntry{ID: "e1"},
	}, nil)

	msg := a.model.cmdGenerate(req)()
	generated, ok := msg.(generatedMsg)
	require.True(t, ok)
	require.NoError(t, generated.err)

	a.model.generating = true
	m, _ := update(t, a.model, generated)

	assert.False(t, m.generating)
	assert.Equal(t, screenResult, m.currentScreen)
	assert.Equal(t, "e1", m.result.entryID)
	assert.True(t, m.result.canRender)
}

func TestAppModel_GenerateWhileGeneratingIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestApp(t, ctrl).model
	m.currentScreen = screenForm
	m.generating = true

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Nil(t, cmd)
}

func TestAppModel_GeneratedWithoutEntryShowsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestApp(t, ctrl).model
	m, cmd := update(t, m, generatedMsg{request: urlRequest("https://x.io"), result: models.GenerateResult{Image: []byte("png")}})

	require.NotNil(t, cmd)
	assert.Equal(t, screenResult, m.currentScreen)
	assert.Contains(t, m.status, "could not be saved")
	assert.Empty(t, m.result.entryID)
}

func TestAppModel_LogoAdjustmentCanBeApplied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestApp(t, ctrl).model
	m.currentScreen = screenForm

	adjErr := &service.LogoAdjustmentError{Adjustment: models.LogoAdjustment{Requested: 120, Adjusted: 75}}
	m, _ = update(t, m, generatedMsg{err: adjErr})

	require.True(t, m.showError)
	require.NotNil(t, m.errorOverlay.adjustment)
	assert.Equal(t, screenOptions, m.currentScreen)
	assert.Equal(t, validators.FieldLogoSize, optionRows[m.options.focus])

	m, cmd := update(t, m, runes("a"))
	assert.False(t, m.showError)
	assert.Equal(t, 75, m.options.logoSize)
	assert.True(t, m.generating)
	assert.NotNil(t, cmd)
}

func TestAppModel_FieldErrorFocusesField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestApp(t, ctrl).model
	m.form = newFormModel(models.FormModel{Kind: models.PayloadKindEvent})
	m.currentScreen = screenOptions

	fieldErr := &validators.FieldError{Field: validators.FieldEventEnd, Err: validators.ErrRequiredField}
	m, _ = update(t, m, generatedMsg{err: fmt.Errorf("%w: %w", service.ErrValidation, fieldErr)})

	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "End")
	assert.Equal(t, screenForm, m.currentScreen)
	assert.Equal(t, validators.FieldEventEnd, m.form.inputs[m.form.focus].field.Key)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showError)
	assert.Equal(t, screenForm, m.currentScreen)
}

func TestAppModel_OptionsFieldErrorOpensOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestApp(t, ctrl).model
	m.currentScreen = screenForm

	fieldErr := &validators.FieldError{Field: validators.FieldBackground, Err: errors.New("bad colour")}
	m, _ = update(t, m, generatedMsg{err: fieldErr})

	assert.Equal(t, screenOptions, m.currentScreen)
	assert.Equal(t, optBackground, m.options.focus)
}

// ── result actions ───────────────────────────────────────────────────────────

func TestAppModel_ExportWritesFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl)
	req := urlRequest("https://example.com")
	a.model.result = newResultModel(req, models.GenerateResult{Image: []byte("png")})

	a.generation.EXPECT().Download(gomock.Any(), req, models.ExportJPEG).
		Return(render.FileFor(models.ExportJPEG, []byte("jpeg-bytes")), nil)

	msg, ok := a.model.cmdExport(models.ExportJPEG)().(exportedMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	data, err := os.ReadFile(msg.path)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
	assert.Equal(t, "qrcode-20260301-120000.jpg", filepath.Base(msg.path))

	m, _ := update(t, a.model, msg)
	assert.Contains(t, m.status, msg.path)
}

func TestAppModel_ExportUnrestorableEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl)
	entry := models.HistoryEntry{ID: "e1", RenderedImage: render.DataURI([]byte("stored"))}
	a.model.result = resultFromHistory(entry, models.RestoredGeneration{Restored: false})

	msg := a.model.cmdExport(models.ExportSVG)().(exportedMsg)
	assert.ErrorIs(t, msg.err, ErrNothingToExport)

	msg = a.model.cmdExport(models.ExportPNG)().(exportedMsg)
	require.NoError(t, msg.err)
	data, err := os.ReadFile(msg.path)
	require.NoError(t, err)
	assert.Equal(t, []byte("stored"), data)
}

func TestAppModel_CopyAndShare(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl)
	a.model.currentScreen = screenResult
	a.model.result = newResultModel(urlRequest("https://example.com"), models.GenerateResult{Image: []byte("png")})

	a.share.EXPECT().Copy(gomock.Any(), []byte("png")).Return(nil)
	a.share.EXPECT().Share(gomock.Any(), []byte("png"), "https://example.com").
		Return(errors.Join(service.ErrShare, service.ErrClipboard))

	_, cmd := update(t, a.model, runes("c"))
	require.NotNil(t, cmd)
	m, _ := update(t, a.model, cmd())
	assert.Equal(t, "Copied to clipboard.", m.status)

	_, cmd = update(t, a.model, runes("s"))
	require.NotNil(t, cmd)
	m, _ = update(t, a.model, cmd())
	assert.True(t, m.showError)
	assert.Contains(t, m.errorOverlay.message, "clipboard")
}

// ── history ──────────────────────────────────────────────────────────────────

func TestAppModel_OpenHistoryLoadsEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl)
	log := models.HistoryLog{{ID: "b"}, {ID: "a"}}
	a.history.EXPECT().List(gomock.Any()).Return(log)

	m, cmd := update(t, a.model, runes("h"))
	assert.Equal(t, screenHistory, m.currentScreen)
	assert.True(t, m.history.loading)

	m, _ = update(t, m, cmd())
	assert.False(t, m.history.loading)
	assert.Len(t, m.history.items, 2)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenKinds, m.currentScreen)
}

func TestAppModel_ClearHistoryAsksFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl)
	a.model.currentScreen = screenHistory
	a.model.history.items = models.HistoryLog{{ID: "a"}}

	m, _ := update(t, a.model, runes("d"))
	require.True(t, m.showConfirm)

	m, cmd := update(t, m, runes("n"))
	assert.False(t, m.showConfirm)
	assert.Nil(t, cmd)

	a.history.EXPECT().Clear(gomock.Any()).Return(models.HistoryLog{}, nil)

	m, _ = update(t, m, runes("d"))
	m, cmd = update(t, m, runes("y"))
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Empty(t, m.history.items)
	assert.Equal(t, "History cleared.", m.status)
}

func TestAppModel_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl)
	entry := models.HistoryEntry{
		ID:             "e1",
		PayloadKind:    models.PayloadKindWifi,
		RawPayloadText: "WIFI:T:WPA;S:Home;P:pw;H:false;;",
		RenderedImage:  render.DataURI([]byte("png")),
	}
	a.model.currentScreen = screenHistory
	a.model.history.items = models.HistoryLog{entry}

	restored := models.RestoredGeneration{
		Form:     models.FormModel{Kind: models.PayloadKindWifi, Wifi: models.WifiFields{SSID: "Home", Password: "pw", Encryption: models.WifiEncryptionWPA}},
		Options:  models.DefaultRenderOptions(),
		Restored: true,
	}
	a.history.EXPECT().Restore(gomock.Any(), "e1").Return(restored, nil)

	_, cmd := update(t, a.model, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ := update(t, a.model, cmd())
	assert.Equal(t, screenResult, m.currentScreen)
	assert.Equal(t, models.PayloadKindWifi, m.form.kind)
	assert.Equal(t, models.PayloadKindWifi, m.kinds.current())
	assert.Equal(t, "Home", m.form.toForm().Wifi.SSID)
	assert.Equal(t, []byte("png"), m.result.png)
	assert.True(t, m.result.canRender)
}

func TestAppModel_RestoreUnparsedEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestApp(t, ctrl).model
	entry := models.HistoryEntry{ID: "e1", PayloadKind: models.PayloadKindEvent}

	m, _ = update(t, m, restoredMsg{entry: entry, restored: models.RestoredGeneration{Restored: false}})

	assert.Equal(t, screenResult, m.currentScreen)
	assert.False(t, m.result.canRender)
	assert.Equal(t, models.PayloadKindURL, m.form.kind)
	assert.Contains(t, m.status, "cannot be loaded back")
}

func TestAppModel_ShareHistoryEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := newTestApp(t, ctrl)
	a.model.currentScreen = screenHistory
	a.model.history.items = models.HistoryLog{{ID: "e1"}}
	a.history.EXPECT().Share(gomock.Any(), "e1").Return(nil)

	_, cmd := update(t, a.model, runes("s"))
	require.NotNil(t, cmd)

	m, _ := update(t, a.model, cmd())
	assert.Equal(t, "Shared.", m.status)
}
