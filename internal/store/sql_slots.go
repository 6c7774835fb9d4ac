// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
)

// Writes that hit a locked database are retried this many times.
const (
	writeRetries    = 3
	writeRetryDelay = 25 * time.Millisecond
)

// sqliteSlotStorage keeps each slot as a row of the "slots" table.
type sqliteSlotStorage struct {
	*DB
	classifier *SQLiteErrorClassifier
	logger     *logger.Logger
	now        func() time.Time
}

// NewSQLiteSlotStorage constructs a [SlotStorage] on top of a migrated
// SQLite connection.
func NewSQLiteSlotStorage(db *DB, log *logger.Logger) SlotStorage {
	return &sqliteSlotStorage{
		DB:         db,
		classifier: NewSQLiteErrorClassifier(),
		logger:     log,
		now:        time.Now,
	}
}

func (s *sqliteSlotStorage) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSlotQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqliteSlotStorage.Get").Str("key", key).Msg("error building query")
		return "", false, err
	}

	var value string
	err = s.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteSlotStorage.Get").Str("key", key).Msg("error reading slot")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

func (s *sqliteSlotStorage) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSlotQuery(key, value, s.now())
	if err != nil {
		log.Err(err).Str("func", "sqliteSlotStorage.Set").Str("key", key).Msg("error building query")
		return err
	}

	if err = s.exec(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteSlotStorage.Set").Str("key", key).Msg("error writing slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSlotStorage) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSlotQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqliteSlotStorage.Delete").Str("key", key).Msg("error building query")
		return err
	}

	if err = s.exec(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteSlotStorage.Delete").Str("key", key).Msg("error deleting slot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// exec runs a write statement, retrying while the database is locked.
func (s *sqliteSlotStorage) exec(ctx context.Context, query string, args ...any) error {
	backoff := retry.WithMaxRetries(writeRetries, retry.NewConstant(writeRetryDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		_, err := s.ExecContext(ctx, query, args...)
		if s.classifier.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("database is locked, retrying write")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (s *sqliteSlotStorage) Close() error {
	return s.DB.Close()
}
