// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-qr-keeper/models"
)

const exportTimeLayout = "20060102-150405"

// writeExport stores file in dir under a timestamped name so repeated
// exports never overwrite each other. It returns the written path.
func writeExport(dir string, file models.ExportFile, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	ext := filepath.Ext(file.Name)
	base := strings.TrimSuffix(file.Name, ext)
	path := filepath.Join(dir, fmt.Sprintf("%s-%s%s", base, now.Format(exportTimeLayout), ext))

	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
