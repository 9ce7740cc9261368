package ports

import (
	"context"
	"time"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	CountAdmins(ctx context.Context) (int, error)
}

type EventRepository interface {
	// Create stores the event together with its ticket pool.
	Create(ctx context.Context, event *domain.Event, capacity int) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	// UpdateStatus moves the event from one status to another, failing with
	// domain.ErrConflict when the event is no longer in the from status.
	UpdateStatus(ctx context.Context, id int64, from, to domain.EventStatus) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Event, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.Event, error)
	ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
	Search(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
}

type TicketPoolRepository interface {
	Load(ctx context.Context, eventID int64) (*domain.TicketPool, error)
	SetCapacity(ctx context.Context, eventID int64, total int) error
}

type RegistrationRepository interface {
	Create(ctx context.Context, reg *domain.Registration) error
	GetByID(ctx context.Context, id int64) (*domain.Registration, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Registration, error)
	ListByEvent(ctx context.Context, eventID int64) ([]domain.Registration, error)
	CountActiveByEvent(ctx context.Context, eventID int64) (int, error)
	// Cancel flips an ACTIVE registration to CANCELLED, failing with
	// domain.ErrConflict when it was already cancelled.
	Cancel(ctx context.Context, id int64, at time.Time) error
}
