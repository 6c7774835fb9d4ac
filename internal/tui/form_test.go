// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-keeper/internal/validators"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// ── formModel ────────────────────────────────────────────────────────────────

func TestFormModel_SwitchKindKeepsValues(t *testing.T) {
	form := newFormModel(models.FormModel{
		Kind: models.PayloadKindWifi,
		Wifi: models.WifiFields{SSID: "Home", Encryption: models.WifiEncryptionWEP, Hidden: true},
	})

	switched := form.switchKind(models.PayloadKindURL)
	got := switched.toForm()

	assert.Equal(t, models.PayloadKindURL, got.Kind)
	assert.Equal(t, "Home", got.Wifi.SSID)
	assert.Equal(t, models.WifiEncryptionWEP, got.Wifi.Encryption)
	assert.True(t, got.Wifi.Hidden)
}

func TestFormModel_ChoiceAndToggle(t *testing.T) {
	form := newFormModel(models.FormModel{Kind: models.PayloadKindWifi})
	form.focusField("wifi.encryption")
	require.Equal(t, "wifi.encryption", form.inputs[form.focus].field.Key)

	form, _ = form.update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, models.WifiEncryptionWEP, form.toForm().Wifi.Encryption)

	form, _ = form.update(tea.KeyMsg{Type: tea.KeyLeft})
	form, _ = form.update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, models.WifiEncryptionNone, form.toForm().Wifi.Encryption)

	form.focusField("wifi.hidden")
	form, _ = form.update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.True(t, form.toForm().Wifi.Hidden)
}

func TestFormModel_TypingFillsFocusedField(t *testing.T) {
	form := newFormModel(models.FormModel{Kind: models.PayloadKindSMS})

	form, _ = form.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+15550100")})
	form, _ = form.update(tea.KeyMsg{Type: tea.KeyTab})
	form, _ = form.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})

	got := form.toForm()
	assert.Equal(t, "+15550100", got.SMS.Phone)
	assert.Equal(t, "hi", got.SMS.Message)
	assert.True(t, form.lastFocused())
}

func TestFormModel_FocusFieldFallsBackToFirstRow(t *testing.T) {
	form := newFormModel(models.FormModel{Kind: models.PayloadKindContact})
	form.setFocus(3)

	form.focusField(validators.FieldContactName)
	assert.Equal(t, 0, form.focus)
}

// ── optionsModel ─────────────────────────────────────────────────────────────

func TestOptionsModel_ToOptions(t *testing.T) {
	t.Run("no logo", func(t *testing.T) {
		opts, err := newOptionsModel(models.DefaultRenderOptions()).toOptions()
		require.NoError(t, err)
		assert.Nil(t, opts.Logo)
		assert.Equal(t, models.DefaultSymbolSize, opts.SizePx)
		assert.Equal(t, models.DefaultForegroundColor, opts.ForegroundColor)
	})

	t.Run("logo from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logo.png")
		require.NoError(t, os.WriteFile(path, []byte("png-bytes"), 0o600))

		m := newOptionsModel(models.DefaultRenderOptions())
		m.logoPath.SetValue(path)

		opts, err := m.toOptions()
		require.NoError(t, err)
		require.NotNil(t, opts.Logo)
		assert.Equal(t, []byte("png-bytes"), opts.Logo.Image)
		assert.Equal(t, models.DefaultLogoSize, opts.Logo.SizePx)
		assert.Equal(t, models.DefaultLogoShape, opts.Logo.Shape)
	})

	t.Run("missing logo file", func(t *testing.T) {
		m := newOptionsModel(models.DefaultRenderOptions())
		m.logoPath.SetValue(filepath.Join(t.TempDir(), "absent.png"))

		_, err := m.toOptions()
		var fieldErr *validators.FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, validators.FieldLogoImage, fieldErr.Field)
	})

	t.Run("restored logo", func(t *testing.T) {
		restored := models.DefaultRenderOptions()
		restored.Logo = &models.LogoOptions{SizePx: 80, Shape: models.LogoShapeCircle, Image: []byte("old")}

		opts, err := newOptionsModel(restored).toOptions()
		require.NoError(t, err)
		require.NotNil(t, opts.Logo)
		assert.Equal(t, []byte("old"), opts.Logo.Image)
		assert.Equal(t, 80, opts.Logo.SizePx)
		assert.Equal(t, models.LogoShapeCircle, opts.Logo.Shape)
	})
}

func TestOptionsModel_StepControls(t *testing.T) {
	m := newOptionsModel(models.DefaultRenderOptions())

	m, _ = m.update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, models.DefaultSymbolSize+models.SymbolSizeStep, m.sizePx)

	for range 10 {
		m, _ = m.update(tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, models.MaxSymbolSize, m.sizePx)

	m.focusField(validators.FieldLogoSize)
	for range 10 {
		m, _ = m.update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	assert.Equal(t, models.MinLogoSize, m.logoSize)

	m = m.withLogoSize(90)
	assert.Equal(t, 90, m.logoSize)
}

func TestOptionsModel_ClearLogo(t *testing.T) {
	restored := models.DefaultRenderOptions()
	restored.Logo = &models.LogoOptions{SizePx: 60, Shape: models.LogoShapeSquare, Image: []byte("x")}

	m := newOptionsModel(restored)
	require.True(t, m.hasLogo())

	m, _ = m.update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.False(t, m.hasLogo())
}
