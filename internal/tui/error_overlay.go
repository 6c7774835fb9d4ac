// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-qr-keeper/models"

type errorOverlayModel struct {
	message string
	// adjustment is set when the logo was too large; the user may apply it.
	adjustment *models.LogoAdjustment
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + m.message + "\n\n"
	if m.adjustment != nil {
		content += "a use the suggested size  esc close"
	} else {
		content += "enter / esc close"
	}
	return overlayBoxStyle.Render(content)
}
