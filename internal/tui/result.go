// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-qr-keeper/internal/render"
	"github.com/MKhiriev/go-qr-keeper/models"
)

// resultModel shows a generated or restored symbol.
type resultModel struct {
	png         []byte
	payloadText string
	title       string
	entryID     string
	// request re-renders the symbol for export. It is unusable when a
	// history entry could not be restored into a form.
	request   models.GenerateRequest
	canRender bool
	preview   string
}

func newResultModel(req models.GenerateRequest, res models.GenerateResult) resultModel {
	m := resultModel{
		png:         res.Image,
		payloadText: res.PayloadText,
		title:       req.Form.PrimaryText(),
		request:     req,
		canRender:   true,
	}
	if res.Entry != nil {
		m.entryID = res.Entry.ID
	}
	m.preview = previewOrNotice(m.png)
	return m
}

func resultFromHistory(entry models.HistoryEntry, restored models.RestoredGeneration) resultModel {
	m := resultModel{
		payloadText: entry.PayloadText,
		title:       entry.RawPayloadText,
		entryID:     entry.ID,
		request:     models.GenerateRequest{Form: restored.Form, Options: restored.Options},
		canRender:   restored.Restored,
	}
	if png, err := render.DecodeDataURI(entry.RenderedImage); err == nil {
		m.png = png
	}
	m.preview = previewOrNotice(m.png)
	return m
}

func previewOrNotice(png []byte) string {
	if len(png) == 0 {
		return "(no image)"
	}
	preview, err := renderPreview(png, previewWidth)
	if err != nil {
		return "(preview unavailable)"
	}
	return previewStyle.Render(preview)
}

func (m resultModel) View(status string) string {
	var b strings.Builder

	b.WriteString(m.preview)
	b.WriteString("\n\n")
	b.WriteString("Encoded: ")
	b.WriteString(fitText(m.payloadText, 70))
	b.WriteString("\n")
	if m.entryID == "" {
		b.WriteString(helpStyle.Render("Not saved to history."))
		b.WriteString("\n")
	}
	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}

	return renderPage("QR CODE", b.String(),
		"p png  j jpeg  v svg  c copy  s share  h history  n new  esc edit")
}
