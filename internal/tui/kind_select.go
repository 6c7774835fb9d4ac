// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-qr-keeper/models"
)

type kindSelectModel struct {
	items []models.PayloadKind
	idx   int
}

func newKindSelectModel() kindSelectModel {
	return kindSelectModel{items: models.PayloadKinds}
}

func (m kindSelectModel) current() models.PayloadKind {
	return m.items[m.idx]
}

func (m *kindSelectModel) selectKind(kind models.PayloadKind) {
	for i, k := range m.items {
		if k == kind {
			m.idx = i
			return
		}
	}
}

func (m kindSelectModel) View() string {
	var b strings.Builder
	b.WriteString("What should the code contain?\n\n")
	for i, kind := range m.items {
		b.WriteString(cursor(i == m.idx))
		b.WriteString(kind.Title())
		b.WriteString("\n")
	}
	return renderPage("QR KEEPER", b.String(), "enter choose  h history  i about  q quit")
}
