// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-qr-keeper/internal/logger"
	"github.com/MKhiriev/go-qr-keeper/internal/mock"
	"github.com/MKhiriev/go-qr-keeper/internal/service"
	"github.com/MKhiriev/go-qr-keeper/models"
)

type stubUI struct {
	err   error
	calls int
}

func (s *stubUI) Run(context.Context) error {
	s.calls++
	return s.err
}

func newServices(ctrl *gomock.Controller) *service.Services {
	history := mock.NewMockHistoryService(ctrl)
	history.EXPECT().List(gomock.Any()).Return(models.HistoryLog{{ID: "a"}})

	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	return &service.Services{HistoryService: history, AppInfoService: appInfo}
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, logger.Nop())
	assert.ErrorIs(t, err, errNilDependency)

	_, err = NewApp(&service.Services{}, nil, logger.Nop())
	assert.ErrorIs(t, err, errNilDependency)
}

func TestApp_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ui := &stubUI{}
	app, err := NewApp(newServices(ctrl), ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, ui.calls)
}

func TestApp_Run_UIError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uiErr := errors.New("terminal gone")
	app, err := NewApp(newServices(ctrl), &stubUI{err: uiErr}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.Run(context.Background()), uiErr)
}
