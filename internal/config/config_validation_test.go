// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() StructuredConfig {
	return StructuredConfig{
		Storage: Storage{Files: Files{HistoryFile: "/tmp/history.json"}},
		Server:  Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Adapter: Adapter{RequestTimeout: time.Second},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "valid file backend",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name: "valid sqlite backend",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Files.HistoryFile = ""
				cfg.Storage.DB.DSN = "/tmp/history.db"
			},
		},
		{
			name: "valid share url",
			mutate: func(cfg *StructuredConfig) {
				cfg.Adapter.ShareURL = "https://share.local/upload"
			},
		},
		{
			name: "no storage backend",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage = Storage{}
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "empty server address",
			mutate: func(cfg *StructuredConfig) {
				cfg.Server.HTTPAddress = ""
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "share url without host",
			mutate: func(cfg *StructuredConfig) {
				cfg.Adapter.ShareURL = "/upload"
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "share url with non-http scheme",
			mutate: func(cfg *StructuredConfig) {
				cfg.Adapter.ShareURL = "ftp://share.local/upload"
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "negative share timeout",
			mutate: func(cfg *StructuredConfig) {
				cfg.Adapter.RequestTimeout = -time.Second
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
