// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
)

func TestNewStorages_FileBackend(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{Files: config.Files{HistoryFile: filepath.Join(t.TempDir(), "history.json")}}

	s, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.History.Append(ctx, entry("a"))
	require.NoError(t, err)
	assert.Len(t, s.History.Load(ctx), 1)
}

func TestNewStorages_SQLiteBackendSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "nested", "history.db")}}

	s, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	_, err = s.History.Append(ctx, entry("a"))
	require.NoError(t, err)
	_, err = s.History.Append(ctx, entry("b"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := NewStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, []string{"b", "a"}, ids(reopened.History.Load(ctx)))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_busy_timeout=2000", sqliteDSN(":memory:"))
	assert.Equal(t, "/tmp/h.db?_busy_timeout=2000&_journal_mode=WAL", sqliteDSN("/tmp/h.db"))
	assert.Equal(t, "file:h.db?mode=ro", sqliteDSN("file:h.db?mode=ro"))
}
