// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/models"
)

const (
	// HistorySlotKey is the slot that holds the serialized history log.
	HistorySlotKey = "qr-generator-history"

	// HistoryCapacity bounds the number of kept entries.
	HistoryCapacity = 20
)

// historyStore caches the log after the first read; every mutation writes
// the whole log back to its slot.
type historyStore struct {
	slots    SlotStorage
	key      string
	capacity int
	logger   *logger.Logger

	mu      sync.Mutex
	entries models.HistoryLog
	loaded  bool
}

// NewHistoryStore constructs a [HistoryStore] over the given slot storage.
func NewHistoryStore(slots SlotStorage, log *logger.Logger) HistoryStore {
	return &historyStore{
		slots:    slots,
		key:      HistorySlotKey,
		capacity: HistoryCapacity,
		logger:   log,
		entries:  models.HistoryLog{},
	}
}

func (h *historyStore) Load(ctx context.Context) models.HistoryLog {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ensureLoaded(ctx)
	return h.snapshot()
}

func (h *historyStore) Append(ctx context.Context, entry models.HistoryEntry) (models.HistoryLog, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ensureLoaded(ctx)

	keep := min(len(h.entries), h.capacity-1)
	next := make(models.HistoryLog, 0, keep+1)
	next = append(next, entry)
	next = append(next, h.entries[:keep]...)
	h.entries = next

	if err := h.write(ctx); err != nil {
		h.logger.Err(err).Str("func", "historyStore.Append").Str("entry_id", entry.ID).Msg("history kept in memory only")
		return h.snapshot(), err
	}

	return h.snapshot(), nil
}

func (h *historyStore) Clear(ctx context.Context) (models.HistoryLog, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = models.HistoryLog{}
	h.loaded = true

	if err := h.slots.Delete(ctx, h.key); err != nil {
		h.logger.Err(err).Str("func", "historyStore.Clear").Msg("error removing history slot")
		return h.snapshot(), fmt.Errorf("%w: %w", ErrPersistingHistory, err)
	}

	return h.snapshot(), nil
}

func (h *historyStore) Get(ctx context.Context, id string) (models.HistoryEntry, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.ensureLoaded(ctx)

	entry, ok := h.entries.Find(id)
	if !ok {
		return models.HistoryEntry{}, fmt.Errorf("%w: %s", ErrHistoryEntryNotFound, id)
	}
	return entry, nil
}

func (h *historyStore) ensureLoaded(ctx context.Context) {
	if h.loaded {
		return
	}
	h.entries = h.read(ctx)
	h.loaded = true
}

func (h *historyStore) read(ctx context.Context) models.HistoryLog {
	raw, ok, err := h.slots.Get(ctx, h.key)
	if err != nil {
		h.logger.Err(err).Str("func", "historyStore.read").Msg("error reading history slot, starting empty")
		return models.HistoryLog{}
	}
	if !ok || raw == "" {
		return models.HistoryLog{}
	}

	var entries models.HistoryLog
	if err = json.Unmarshal([]byte(raw), &entries); err != nil {
		h.logger.Warn().Err(err).Str("func", "historyStore.read").Msg("history slot is corrupt, starting empty")
		return models.HistoryLog{}
	}
	if entries == nil {
		return models.HistoryLog{}
	}
	if len(entries) > h.capacity {
		entries = entries[:h.capacity]
	}

	return entries
}

func (h *historyStore) write(ctx context.Context) error {
	data, err := json.Marshal(h.entries)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistingHistory, err)
	}
	if err = h.slots.Set(ctx, h.key, string(data)); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistingHistory, err)
	}
	return nil
}

func (h *historyStore) snapshot() models.HistoryLog {
	return slices.Clone(h.entries)
}
