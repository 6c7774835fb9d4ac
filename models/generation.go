// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerationState is a step of one generate request.
type GenerationState string

const (
	GenerationIdle        GenerationState = "idle"
	GenerationValidating  GenerationState = "validating"
	GenerationRejected    GenerationState = "rejected"
	GenerationBuilding    GenerationState = "building"
	GenerationRendering   GenerationState = "rendering"
	GenerationFailed      GenerationState = "failed"
	GenerationCompositing GenerationState = "compositing"
	GenerationPersisting  GenerationState = "persisting"
	GenerationDone        GenerationState = "done"
)

// GenerateRequest is the input of a generation or a download.
type GenerateRequest struct {
	Form    FormModel     `json:"form"`
	Options RenderOptions `json:"options"`
}

// LogoAdjustment reports a clamped logo size. Front-ends apply Adjusted to
// their logo slider and ask the user to generate again.
type LogoAdjustment struct {
	Requested int `json:"requested"`
	Adjusted  int `json:"adjusted"`
}

// GenerateResult is the output of a generation. Entry is nil when the history
// write failed. A rejected or failed generation still reports its Stages, and
// Adjustment when the logo was too large.
type GenerateResult struct {
	Image       []byte            `json:"-"`
	DataURI     string            `json:"image"`
	PayloadText string            `json:"payload_text"`
	Entry       *HistoryEntry     `json:"entry,omitempty"`
	Stages      []GenerationState `json:"stages"`
	Adjustment  *LogoAdjustment   `json:"adjustment,omitempty"`
}

// ExportFormat is a download file format.
type ExportFormat string

const (
	ExportPNG  ExportFormat = "png"
	ExportJPEG ExportFormat = "jpeg"
	ExportSVG  ExportFormat = "svg"
)

// IsValid reports whether f is a supported export format.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportPNG, ExportJPEG, ExportSVG:
		return true
	}
	return false
}

// ExportFile is a downloadable symbol.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}
