// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShareTimeout    = 10 * time.Second
	defaultAppDirName      = "go-qr-keeper"
	defaultHistoryFileName = "history.json"
)

// userConfigDir is swapped in tests.
var userConfigDir = os.UserConfigDir

// applyDefaults fills every zero field that has a sensible local default.
// The history file lands in the user's config directory, falling back to the
// working directory when that cannot be resolved.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultShareTimeout
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.HistoryFile == "" {
		dir, err := userConfigDir()
		if err != nil {
			dir = "."
		}
		cfg.Storage.Files.HistoryFile = filepath.Join(dir, defaultAppDirName, defaultHistoryFileName)
	}

	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "."
	}
}
