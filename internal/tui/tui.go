// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type TUI struct {
	services  *service.Services
	exportDir string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, exportDir string, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		exportDir: exportDir,
		buildInfo: buildInfo,
		logger:    logger,
	}, nil
}

// Run shows the generator until the user quits. Quitting is not an error.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.exportDir, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	t.logger.Debug().Err(result.err).Msg("tui closed")
	return nil
}
