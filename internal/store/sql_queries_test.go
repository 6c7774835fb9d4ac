// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_buildSelectSlotQuery(t *testing.T) {
	query, args, err := buildSelectSlotQuery(HistorySlotKey)
	require.NoError(t, err)

	require.Equal(t, "SELECT value FROM slots WHERE key = ?", query)
	require.Equal(t, []any{HistorySlotKey}, args)
}

func Test_buildUpsertSlotQuery(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("X", 3*3600))

	query, args, err := buildUpsertSlotQuery("k", "v", at)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "insert into slots (key,value,updated_at) values (?,?,?)"), query)
	require.Contains(t, q, "on conflict(key) do update set value = excluded.value")
	require.NotContains(t, query, "$1")

	require.Len(t, args, 3)
	require.Equal(t, "k", args[0])
	require.Equal(t, "v", args[1])
	require.Equal(t, at.UTC(), args[2])
}

func Test_buildDeleteSlotQuery(t *testing.T) {
	query, args, err := buildDeleteSlotQuery("k")
	require.NoError(t, err)

	require.Equal(t, "DELETE FROM slots WHERE key = ?", query)
	require.Equal(t, []any{"k"}, args)
}
