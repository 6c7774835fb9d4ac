// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-qr-keeper/internal/config"
	"github.com/MKhiriev/go-qr-keeper/internal/handler"
	"github.com/MKhiriev/go-qr-keeper/internal/logger"
)

var stopSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT}

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wraps the HTTP router built by handlers in a server listening on
// cfg.HTTPAddress.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), stopSignals...)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("api server failed")
	}
}

func (s *server) Run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	served := make(chan error, 1)
	go func() { served <- s.httpServer.RunServer() }()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("stopping api server")
		s.Shutdown()
		return <-served
	}
}

func (s *server) Shutdown() {
	if s.httpServer == nil {
		return
	}
	s.httpServer.Shutdown()
	s.logger.Info().Msg("api server stopped")
}
