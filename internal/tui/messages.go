// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-qr-keeper/models"
)

type generatedMsg struct {
	request models.GenerateRequest
	result  models.GenerateResult
	err     error
}

type exportedMsg struct {
	path string
	err  error
}

type copiedMsg struct {
	err error
}

type sharedMsg struct {
	err error
}

type historyLoadedMsg struct {
	log models.HistoryLog
}

type historyClearedMsg struct {
	log models.HistoryLog
	err error
}

type restoredMsg struct {
	entry    models.HistoryEntry
	restored models.RestoredGeneration
	err      error
}

type clearStatusMsg struct{}
