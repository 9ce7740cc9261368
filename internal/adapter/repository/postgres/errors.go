package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/srgjo27/event_ticketing/internal/core/domain"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// mapError converts constraint violations into domain conflicts and wraps the rest.
func mapError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return domain.WrapError(domain.KindConflict, "duplicate value for "+pqErr.Constraint, err)
		case foreignKeyViolation:
			return domain.WrapError(domain.KindConflict, "record is still referenced by "+pqErr.Table, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
