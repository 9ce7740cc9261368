package services

import (
	"context"
	"time"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"go.uber.org/zap"
)

// RunSnapshotRefresh periodically rewrites the cached availability of every
// approved upcoming event from the ledger until ctx is cancelled.
func (s *EventService) RunSnapshotRefresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		s.logger.Info("availability refresher disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("availability refresher started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("availability refresher stopped")
			return
		case <-ticker.C:
			s.RefreshSnapshots(ctx)
		}
	}
}

// RefreshSnapshots returns the number of snapshots written.
func (s *EventService) RefreshSnapshots(ctx context.Context) int {
	events, err := s.events.ListByStatus(ctx, domain.EventApproved)
	if err != nil {
		s.logger.Error("failed to list approved events", zap.Error(err))
		return 0
	}

	now := s.now()
	refreshed := 0
	for _, e := range events {
		if !domain.IsFutureDay(e.Date, now) {
			continue
		}

		available, err := s.ledger.Available(ctx, e.ID)
		if err != nil {
			s.logger.Warn("failed to read availability", zap.Int64("event_id", e.ID), zap.Error(err))
			continue
		}

		if err := s.cache.Set(ctx, e.ID, available); err != nil {
			s.logger.Warn("failed to store availability snapshot", zap.Int64("event_id", e.ID), zap.Error(err))
			continue
		}
		refreshed++
	}

	if refreshed > 0 {
		s.logger.Debug("availability snapshots refreshed", zap.Int("count", refreshed))
	}

	return refreshed
}
