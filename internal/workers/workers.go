// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/spacenote/spacenote/internal/config"
	"github.com/spacenote/spacenote/internal/logger"
	"github.com/spacenote/spacenote/internal/service"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution; implementations are expected to spawn
// their goroutines internally and return promptly. Stop blocks until the
// worker's goroutines have finished.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers the server runs for its whole
// lifetime. Currently that is the periodic cache refresh worker.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newCacheRefreshWorker(services, cfg.CacheRefreshInterval, logger),
		},
	}
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
