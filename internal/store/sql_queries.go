// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	slotsTable = "slots"

	upsertSlotSuffix = "ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectSlotQuery(key string) (string, []any, error) {
	query, args, err := sqlite.
		Select("value").
		From(slotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertSlotQuery(key, value string, at time.Time) (string, []any, error) {
	query, args, err := sqlite.
		Insert(slotsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, at.UTC()).
		Suffix(upsertSlotSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSlotQuery(key string) (string, []any, error) {
	query, args, err := sqlite.
		Delete(slotsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
