package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
)

type TicketPoolRepository struct {
	db *sql.DB
}

func NewTicketPoolRepository(db *sql.DB) *TicketPoolRepository {
	return &TicketPoolRepository{db: db}
}

// Load reads the stored capacity and derives the booked quantity from ACTIVE registrations.
func (r *TicketPoolRepository) Load(ctx context.Context, eventID int64) (*domain.TicketPool, error) {
	query := `
	SELECT p.total_capacity,
		COALESCE(SUM(reg.quantity) FILTER (WHERE reg.status = 'ACTIVE'), 0)
	FROM ticket_pools p
	LEFT JOIN registrations reg ON reg.event_id = p.event_id
	WHERE p.event_id = $1
	GROUP BY p.total_capacity
	`

	pool := domain.TicketPool{EventID: eventID}

	err := r.db.QueryRowContext(ctx, query, eventID).Scan(&pool.TotalCapacity, &pool.BookedQuantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}

		return nil, mapError("load ticket pool", err)
	}

	return &pool, nil
}

func (r *TicketPoolRepository) SetCapacity(ctx context.Context, eventID int64, total int) error {
	query := `
	UPDATE ticket_pools
	SET total_capacity = $1
	WHERE event_id = $2
	`

	res, err := r.db.ExecContext(ctx, query, total, eventID)
	if err != nil {
		return mapError("set capacity", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}
