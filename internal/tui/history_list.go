// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qr-keeper/internal/store"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type historyListModel struct {
	items   models.HistoryLog
	idx     int
	loading bool
}

func (m historyListModel) current() (models.HistoryEntry, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.HistoryEntry{}, false
	}
	return m.items[m.idx], true
}

func (m historyListModel) View(status string) string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No codes generated yet.\n")
	default:
		for i, item := range m.items {
			b.WriteString(cursor(i == m.idx))
			b.WriteString(fmt.Sprintf("%s  %-9s %s\n",
				item.CreatedAt.Local().Format("2006-01-02 15:04"),
				item.PayloadKind.Title(),
				fitText(item.RawPayloadText, 40)))
		}
	}

	if status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}

	return renderPage(fmt.Sprintf("HISTORY (%d/%d)", len(m.items), store.HistoryCapacity), b.String(),
		"enter restore  s share  d clear all  esc back")
}
