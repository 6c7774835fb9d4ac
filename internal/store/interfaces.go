// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-qr-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SlotStorage is a durable string key-value store. Each key is a slot whose
// value is replaced as a whole.
type SlotStorage interface {
	// Get returns the slot value; ok is false when the slot is empty.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set replaces the slot value.
	Set(ctx context.Context, key, value string) error
	// Delete empties the slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}

// HistoryStore keeps the newest-first, capacity-bounded generation log in a
// single slot.
type HistoryStore interface {
	// Load returns the current log. Missing or corrupt slot data yields an
	// empty log; the problem is logged, never returned.
	Load(ctx context.Context) models.HistoryLog
	// Append prepends entry, truncates the log to capacity and writes it.
	// The in-memory log is updated even when the write fails.
	Append(ctx context.Context, entry models.HistoryEntry) (models.HistoryLog, error)
	// Clear empties the log in memory and in the slot.
	Clear(ctx context.Context) (models.HistoryLog, error)
	// Get returns the entry with the given id.
	Get(ctx context.Context, id string) (models.HistoryEntry, error)
}
