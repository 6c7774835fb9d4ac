// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HistoryEntry is one past generation. RenderedImage is a PNG data URI and
// Options is a snapshot that includes the logo bytes, so a restore brings
// the logo back.
type HistoryEntry struct {
	ID             string        `json:"id"`
	RawPayloadText string        `json:"raw_payload_text"`
	RenderedImage  string        `json:"rendered_image"`
	CreatedAt      time.Time     `json:"created_at"`
	Options        RenderOptions `json:"options"`
	PayloadKind    PayloadKind   `json:"payload_kind"`
	PayloadText    string        `json:"payload_text"`
}

// HistoryLog is ordered newest first.
type HistoryLog []HistoryEntry

// Find returns the entry with the given id.
func (l HistoryLog) Find(id string) (HistoryEntry, bool) {
	for _, e := range l {
		if e.ID == id {
			return e, true
		}
	}
	return HistoryEntry{}, false
}

// RestoredGeneration is what a restore hands back to a front-end. Restored is
// false when the form could not be rebuilt from the payload text; the image
// and options are still returned.
type RestoredGeneration struct {
	Form          FormModel     `json:"form"`
	Options       RenderOptions `json:"options"`
	RenderedImage string        `json:"rendered_image"`
	Restored      bool          `json:"restored"`
}
