package services

import (
	"errors"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/srgjo27/event_ticketing/internal/core/validation"
	"go.uber.org/zap"
)

// internalError passes domain errors through and hides everything else behind
// PERSISTENCE_FAILED after logging it.
func internalError(log *zap.Logger, op string, err error, fields ...zap.Field) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}

	log.Error(op+" failed", append(fields, zap.Error(err))...)
	return domain.WrapError(domain.KindPersistenceFailed, "internal error", err)
}

func parseID(s, field string) (int64, error) {
	var c validation.Collector
	n := c.PositiveInt(s, field)
	if err := c.Err(); err != nil {
		return 0, err
	}
	return int64(n), nil
}
