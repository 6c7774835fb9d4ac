// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "version": "1.2.3" },
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s"
		},
		"adapter": {
			"share_url": "http://localhost:9000/share",
			"request_timeout": "5s"
		},
		"storage": {
			"db": { "dsn": "/var/lib/qr/history.db" },
			"files": { "history_file": "/var/lib/qr/history.json" }
		},
		"export": { "dir": "/tmp/exports" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:9000/share", cfg.Adapter.ShareURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/qr/history.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/qr/history.json", cfg.Storage.Files.HistoryFile)
	assert.Equal(t, "/tmp/exports", cfg.Export.Dir)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read json config")
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode json config")
}

func TestParseJSON_UnknownKey(t *testing.T) {
	p := filepath.Join(t.TempDir(), "typo.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"http_adress": ":8080"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http_adress")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m"`, want: time.Minute},
		{name: "nanoseconds number", input: `1000`, want: time.Microsecond},
		{name: "bad string", input: `"later"`, wantErr: true},
		{name: "fraction", input: `1.5`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
