// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the config file. Durations
// accept either a Go duration string or a number of nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Files struct {
			HistoryFile string `json:"history_file"`
		} `json:"files"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Adapter struct {
		ShareURL       string   `json:"share_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Export struct {
		Dir string `json:"dir"`
	} `json:"export"`
}

// parseJSON reads the config file at path. Unknown keys are rejected so a
// misspelt option does not silently fall back to its default.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json config: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var file StructuredJSONConfig
	if err = dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode json config: %w", err)
	}

	return file.toConfig(), nil
}

func (f StructuredJSONConfig) toConfig() *StructuredConfig {
	cfg := &StructuredConfig{}
	cfg.App.Version = f.App.Version
	cfg.Storage.DB.DSN = f.Storage.DB.DSN
	cfg.Storage.Files.HistoryFile = f.Storage.Files.HistoryFile
	cfg.Server.HTTPAddress = f.Server.HTTPAddress
	cfg.Server.RequestTimeout = time.Duration(f.Server.RequestTimeout)
	cfg.Adapter.ShareURL = f.Adapter.ShareURL
	cfg.Adapter.RequestTimeout = time.Duration(f.Adapter.RequestTimeout)
	cfg.Export.Dir = f.Export.Dir
	return cfg
}

// Duration is a time.Duration that reads "30s" style strings from JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(b, &ns); err != nil {
		return fmt.Errorf("duration must be a string or integer nanoseconds: %w", err)
	}
	*d = Duration(ns)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
