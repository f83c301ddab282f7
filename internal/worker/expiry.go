package worker

import (
	"context"
	"time"

	"github.com/adityaraj/fuelflow/internal/store"
	"go.uber.org/zap"
)

// ExpirySweeper periodically persists "expired" on paid tokens past their
// deadline. Display never waits for it; the read path derives expiry on its
// own, so the sweep only keeps stored rows honest.
type ExpirySweeper struct {
	store    store.Store
	logger   *zap.Logger
	interval time.Duration
}

func NewExpirySweeper(s store.Store, logger *zap.Logger, interval time.Duration) *ExpirySweeper {
	return &ExpirySweeper{
		store:    s,
		logger:   logger,
		interval: interval,
	}
}

func (w *ExpirySweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("expiry sweeper started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ExpirySweeper) sweep(ctx context.Context) {
	expired, err := w.store.ExpireOverdueTokens(ctx, time.Now())
	if err != nil {
		w.logger.Error("expiry sweep failed", zap.Error(err))
		return
	}
	if expired > 0 {
		w.logger.Info("expired overdue tokens", zap.Int64("count", expired))
	}
}
