// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-keeper/internal/validators"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// Rows of the options screen.
const (
	optSize = iota
	optForeground
	optBackground
	optLogoPath
	optLogoSize
	optLogoShape
	optCount
)

var optionLabels = map[string]string{
	validators.FieldSize:            "Size",
	validators.FieldForeground:      "Foreground",
	validators.FieldBackground:      "Background",
	validators.FieldErrorCorrection: "Error correction",
	validators.FieldLogoImage:       "Logo file",
	validators.FieldLogoSize:        "Logo size",
	validators.FieldLogoShape:       "Logo shape",
}

var optionRows = [optCount]string{
	optSize:       validators.FieldSize,
	optForeground: validators.FieldForeground,
	optBackground: validators.FieldBackground,
	optLogoPath:   validators.FieldLogoImage,
	optLogoSize:   validators.FieldLogoSize,
	optLogoShape:  validators.FieldLogoShape,
}

// optionsModel edits the render options. A logo comes either from the file
// at the path input or, after a restore, from logoData.
type optionsModel struct {
	sizePx     int
	foreground textinput.Model
	background textinput.Model
	logoPath   textinput.Model
	logoData   []byte
	logoSize   int
	shape      int
	focus      int
}

func newOptionsModel(opts models.RenderOptions) optionsModel {
	m := optionsModel{
		sizePx:     opts.SizePx,
		foreground: newColorInput(opts.ForegroundColor, models.DefaultForegroundColor),
		background: newColorInput(opts.BackgroundColor, models.DefaultBackgroundColor),
		logoPath:   textinput.New(),
		logoSize:   models.DefaultLogoSize,
	}
	if m.sizePx == 0 {
		m.sizePx = models.DefaultSymbolSize
	}
	m.logoPath.Width = 40
	m.logoPath.Placeholder = "path to png, jpeg, gif or webp"

	m.shape = shapeIndex(models.DefaultLogoShape)
	if opts.Logo != nil {
		m.logoData = opts.Logo.Image
		m.logoSize = opts.Logo.SizePx
		m.shape = shapeIndex(opts.Logo.Shape)
	}

	m.setFocus(0)
	return m
}

func newColorInput(value, fallback string) textinput.Model {
	in := textinput.New()
	in.Width = 9
	in.CharLimit = 7
	if value == "" {
		value = fallback
	}
	in.SetValue(value)
	return in
}

func shapeIndex(shape models.LogoShape) int {
	for i, s := range models.LogoShapes {
		if s == shape {
			return i
		}
	}
	return 0
}

func (m optionsModel) hasLogo() bool {
	return strings.TrimSpace(m.logoPath.Value()) != "" || len(m.logoData) > 0
}

// toOptions reads the logo file, if any, and assembles the options.
func (m optionsModel) toOptions() (models.RenderOptions, error) {
	opts := models.RenderOptions{
		ForegroundColor: strings.TrimSpace(m.foreground.Value()),
		BackgroundColor: strings.TrimSpace(m.background.Value()),
		SizePx:          m.sizePx,
		ErrorCorrection: models.ErrorCorrectionHighest,
	}
	if !m.hasLogo() {
		return opts, nil
	}

	data := m.logoData
	if path := strings.TrimSpace(m.logoPath.Value()); path != "" {
		var err error
		data, err = os.ReadFile(filepath.Clean(path))
		if err != nil {
			return models.RenderOptions{}, &validators.FieldError{Field: validators.FieldLogoImage, Err: fmt.Errorf("read logo: %w", err)}
		}
	}

	opts.Logo = &models.LogoOptions{
		SizePx: m.logoSize,
		Shape:  models.LogoShapes[m.shape],
		Image:  data,
	}
	return opts, nil
}

// withLogoSize applies a suggested logo size.
func (m optionsModel) withLogoSize(size int) optionsModel {
	m.logoSize = size
	return m
}

// clearLogo drops both the path and any restored logo.
func (m optionsModel) clearLogo() optionsModel {
	m.logoPath.SetValue("")
	m.logoData = nil
	return m
}

func (m *optionsModel) input(row int) *textinput.Model {
	switch row {
	case optForeground:
		return &m.foreground
	case optBackground:
		return &m.background
	case optLogoPath:
		return &m.logoPath
	}
	return nil
}

func (m *optionsModel) setFocus(row int) {
	if in := m.input(m.focus); in != nil {
		in.Blur()
	}
	m.focus = (row + optCount) % optCount
	if in := m.input(m.focus); in != nil {
		in.Focus()
	}
}

func (m *optionsModel) focusField(field string) {
	for row, f := range optionRows {
		if f == field {
			m.setFocus(row)
			return
		}
	}
}

func (m optionsModel) update(msg tea.Msg) (optionsModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.noLogo):
			return m.clearLogo(), nil
		case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.right):
			step := 1
			if key.Matches(keyMsg, keys.left) {
				step = -1
			}
			switch m.focus {
			case optSize:
				m.sizePx = clamp(m.sizePx+step*models.SymbolSizeStep, models.MinSymbolSize, models.MaxSymbolSize)
				return m, nil
			case optLogoSize:
				m.logoSize = max(m.logoSize+step*models.LogoSizeStep, models.MinLogoSize)
				return m, nil
			case optLogoShape:
				m.shape = (m.shape + step + len(models.LogoShapes)) % len(models.LogoShapes)
				return m, nil
			}
		}
	}

	in := m.input(m.focus)
	if in == nil {
		return m, nil
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m optionsModel) View() string {
	rows := [optCount]string{
		optSize:       fmt.Sprintf("< %dpx >", m.sizePx),
		optForeground: "[" + m.foreground.View() + "]",
		optBackground: "[" + m.background.View() + "]",
		optLogoPath:   "[" + m.logoPath.View() + "]",
		optLogoSize:   fmt.Sprintf("< %dpx >", m.logoSize),
		optLogoShape:  "< " + string(models.LogoShapes[m.shape]) + " >",
	}

	var b strings.Builder
	for row, content := range rows {
		line := cursor(row == m.focus) + padRight(optionLabels[optionRows[row]], 18) + content
		if row == optLogoPath && strings.TrimSpace(m.logoPath.Value()) == "" && len(m.logoData) > 0 {
			line += fmt.Sprintf("  (restored logo, %d KB)", (len(m.logoData)+1023)/1024)
		}
		if row == m.focus {
			line = focusStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\nError correction is fixed at H so the logo cannot break decoding.\n")
	if !m.hasLogo() {
		b.WriteString("No logo.\n")
	}

	return renderPage("OPTIONS", b.String(), "tab next  ←/→ change  ctrl+x remove logo  enter/ctrl+g generate  esc back")
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
