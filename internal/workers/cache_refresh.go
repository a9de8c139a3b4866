// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SpaceNote Authors

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/spacenote/spacenote/internal/logger"
)

// cacheRefresher is the slice of the service layer the worker needs.
type cacheRefresher interface {
	RefreshCaches(ctx context.Context) error
}

// cacheRefreshWorker periodically re-reads users and spaces from storage
// into the in-memory caches. When several server instances share one
// database, a change applied through one instance becomes visible to the
// others within one refresh interval.
type cacheRefreshWorker struct {
	refresher cacheRefresher
	interval  time.Duration
	logger    *logger.Logger

	stopOnce sync.Once
	done     chan struct{}
	finished chan struct{}
}

func newCacheRefreshWorker(refresher cacheRefresher, interval time.Duration, logger *logger.Logger) *cacheRefreshWorker {
	return &cacheRefreshWorker{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
		done:      make(chan struct{}),
		finished:  make(chan struct{}),
	}
}

func (w *cacheRefreshWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("cache refresh worker disabled")
		close(w.finished)
		return
	}

	w.logger.Info().Dur("interval", w.interval).Msg("cache refresh worker started")

	go func() {
		defer close(w.finished)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-w.done:
				return
			case <-ticker.C:
				if err := w.refresher.RefreshCaches(ctx); err != nil {
					w.logger.Err(err).Msg("cache refresh failed")
				}
			}
		}
	}()
}

func (w *cacheRefreshWorker) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
	})
	<-w.finished
}
