// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HistoryResponse is the body of the history listing. Entries are newest
// first.
type HistoryResponse struct {
	Entries HistoryLog `json:"entries"`

	// Length is the number of entries, provided so a client can check the
	// payload without iterating it.
	Length int `json:"length"`
}

// NewHistoryResponse wraps a log, never returning a nil Entries slice.
func NewHistoryResponse(log HistoryLog) HistoryResponse {
	if log == nil {
		log = HistoryLog{}
	}
	return HistoryResponse{Entries: log, Length: len(log)}
}

// ErrorResponse is the body of every failed API call. Field names the
// offending form or option field for validation failures, and Adjustment
// carries the largest logo size that fits when the logo was too large.
type ErrorResponse struct {
	Error      string          `json:"error"`
	Field      string          `json:"field,omitempty"`
	Adjustment *LogoAdjustment `json:"adjustment,omitempty"`
}
