package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/event_ticketing/internal/core/domain"
)

// AvailabilityCache holds eventually consistent availability snapshots for listings.
type AvailabilityCache interface {
	Get(ctx context.Context, eventID int64) (available int, found bool, err error)
	Set(ctx context.Context, eventID int64, available int) error
	Invalidate(ctx context.Context, eventID int64) error
}

type SessionStore interface {
	Save(ctx context.Context, principal *domain.Principal, ttl time.Duration) error
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.Principal, error)
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

type TokenIssuer interface {
	Issue(principal *domain.Principal) (token string, expiresAt time.Time, err error)
	Parse(token string) (uuid.UUID, error)
}

// AuditSink receives security events. Record must not block the caller.
type AuditSink interface {
	Record(event domain.AuditEvent)
}
