package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Flusher is a store that can retry a failed snapshot write
type Flusher interface {
	FlushPending()
}

// PersistenceWorker periodically retries dirty snapshots so durable state
// eventually catches up with in-memory state after a write failure. It never
// blocks mutations; stores stay authoritative in memory either way.
type PersistenceWorker struct {
	flushers []Flusher
	interval time.Duration
	logger   *zap.Logger
}

func NewPersistenceWorker(interval time.Duration, logger *zap.Logger, flushers ...Flusher) *PersistenceWorker {
	return &PersistenceWorker{
		flushers: flushers,
		interval: interval,
		logger:   logger,
	}
}

// Start begins the background retry loop until ctx is cancelled
func (w *PersistenceWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("Persistence worker started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Persistence worker stopped")
			return
		case <-ticker.C:
			for _, f := range w.flushers {
				f.FlushPending()
			}
		}
	}
}
