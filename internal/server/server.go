// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spacenote/spacenote/internal/config"
	myHTTP "github.com/spacenote/spacenote/internal/handler/http"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the HTTP transport around the given handler and attaches
// the background workers to the server lifecycle: they start alongside the
// listener and stop during graceful shutdown.
func NewServer(handler *myHTTP.Handler, pool *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating server")

	return &server{
		httpServer: newHTTPServer(handler.Init(), cfg, logger),
		workers:    pool,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v", err)
	}
}

func (s *server) Shutdown() {
	if s.workers != nil {
		s.workers.Stop()
	}

	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		// finish started servers
		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	if s.workers != nil {
		s.logger.Info().Msg("Launching background workers")
		s.workers.Run(ctx)
	}

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
