// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose migrations of the SQLite slot table.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("migration error: db is nil")

// Migrate brings db up to the latest embedded version and returns how many
// migrations were applied.
func Migrate(ctx context.Context, db *sql.DB) (int, error) {
	if db == nil {
		return 0, errNilDB
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, embedMigrations)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}
