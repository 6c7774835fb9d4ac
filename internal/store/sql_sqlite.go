// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/migrations"
)

// busyTimeoutMs is how long SQLite itself waits on a locked database before
// a write surfaces SQLITE_BUSY and the retry loop in exec takes over.
const busyTimeoutMs = 2000

// DB wraps the SQLite connection that holds the slot table.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// OpenSQLite opens the database at cfg.DSN, creating its directory when
// needed, and checks the connection.
func OpenSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if err := ensureDBDir(cfg.DSN); err != nil {
		log.Err(err).Str("func", "OpenSQLite").Msg("error creating database directory")
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "OpenSQLite").Msg("error opening database")
		return nil, fmt.Errorf("open database: %w", err)
	}
	// one connection keeps ":memory:" a single database and serialises writers
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "OpenSQLite").Msg("error pinging database")
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Debug().Str("func", "OpenSQLite").Str("dsn", cfg.DSN).Msg("database opened")
	return &DB{DB: conn, logger: log}, nil
}

// Migrate applies the embedded goose migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	db.logger.Debug().Str("func", "DB.Migrate").Int("applied", applied).Msg("migrations applied")
	return nil
}

// sqliteDSN adds the driver options to a plain path. A DSN that already
// carries options is used as given.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn
	}
	if dsn == memoryPath {
		return fmt.Sprintf("%s?_busy_timeout=%d", dsn, busyTimeoutMs)
	}
	return fmt.Sprintf("%s?_busy_timeout=%d&_journal_mode=WAL", dsn, busyTimeoutMs)
}

// ensureDBDir creates the parent directory of a file DSN. SQLite creates the
// file itself.
func ensureDBDir(dsn string) error {
	if dsn == memoryPath || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
