// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-qr-keeper binaries. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage selects the durable slot that keeps the generation history.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout of the local HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings of the share endpoint client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Export holds where downloaded symbols are written by the TUI and CLI.
	Export Export `envPrefix:"EXPORT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG,expand"`
}

// Storage groups the configuration of the history slot backends. When DB.DSN
// is set the SQLite backend wins, otherwise Files.HistoryFile is used.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the JSON file slot settings.
	Files Files `envPrefix:"FILES_"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the local HTTP API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the SQLite slot backend.
type DB struct {
	// DSN is the SQLite database path (e.g. "/home/me/.qr/history.db").
	// ":memory:" keeps the slot in memory for the lifetime of the process.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI,expand"`
}

// Files holds settings for the JSON file slot backend.
type Files struct {
	// HistoryFile is the path of the JSON document holding all slots.
	// Env: STORAGE_FILES_HISTORY_FILE
	HistoryFile string `env:"HISTORY_FILE,expand"`
}

// Adapter holds configuration of the share endpoint.
type Adapter struct {
	// ShareURL is the endpoint that receives shared symbols as a multipart
	// upload. Empty disables the share surface, so sharing always falls back
	// to the clipboard.
	// Env: ADAPTER_SHARE_URL
	ShareURL string `env:"SHARE_URL"`

	// RequestTimeout bounds a single share upload (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Export holds settings for files written by downloads.
type Export struct {
	// Dir is the directory downloaded symbols are written to.
	// Env: EXPORT_DIR
	Dir string `env:"DIR,expand"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

// GetCommandConfig is [GetStructuredConfig] without the flag source. It is
// used by binaries that own their command line (the cobra CLI).
func GetCommandConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}
