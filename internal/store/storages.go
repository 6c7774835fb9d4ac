// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
)

// Storages bundles the slot backend and the history log built on it.
type Storages struct {
	Slots   SlotStorage
	History HistoryStore
}

// NewStorages picks the slot backend from cfg: SQLite when a DSN is set,
// otherwise the JSON file (or memory when no file is configured).
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		slots SlotStorage
		err   error
	)

	if cfg.DB.DSN != "" {
		db, err := OpenSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(ctx); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
		slots = NewSQLiteSlotStorage(db, log)
		log.Info().Str("func", "NewStorages").Str("backend", "sqlite").Msg("history storage ready")
	} else {
		slots, err = NewFileSlotStorage(cfg.Files.HistoryFile, log)
		if err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error opening slot file")
			return nil, err
		}
		log.Info().Str("func", "NewStorages").Str("backend", "file").Str("path", cfg.Files.HistoryFile).Msg("history storage ready")
	}

	return &Storages{
		Slots:   slots,
		History: NewHistoryStore(slots, log),
	}, nil
}

// Close releases the slot backend.
func (s *Storages) Close() error {
	return s.Slots.Close()
}
