package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
)

type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, organizer_id, title, description, event_date, event_time, venue, status, created_at, updated_at`

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID,
		&e.OrganizerID,
		&e.Title,
		&e.Description,
		&e.Date,
		&e.Time,
		&e.Venue,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts the event and its ticket pool in one transaction.
func (r *EventRepository) Create(ctx context.Context, event *domain.Event, capacity int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryEvent := `
	INSERT INTO events (organizer_id, title, description, event_date, event_time, venue, status, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id
	`

	err = tx.QueryRowContext(ctx, queryEvent,
		event.OrganizerID, event.Title, event.Description, event.Date, event.Time,
		event.Venue, event.Status, event.CreatedAt, event.UpdatedAt,
	).Scan(&event.ID)
	if err != nil {
		return mapError("insert event", err)
	}

	queryPool := `
	INSERT INTO ticket_pools (event_id, total_capacity)
	VALUES ($1, $2)
	`

	if _, err = tx.ExecContext(ctx, queryPool, event.ID, capacity); err != nil {
		return mapError("insert ticket pool", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	e, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, mapError("get event", err)
	}

	return e, nil
}

func (r *EventRepository) Update(ctx context.Context, event *domain.Event) error {
	query := `
	UPDATE events
	SET title = $1, description = $2, event_date = $3, event_time = $4, venue = $5, updated_at = $6
	WHERE id = $7
	`

	res, err := r.db.ExecContext(ctx, query,
		event.Title, event.Description, event.Date, event.Time, event.Venue, event.UpdatedAt, event.ID,
	)
	if err != nil {
		return mapError("update event", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.EventStatus) error {
	query := `
	UPDATE events
	SET status = $1, updated_at = NOW()
	WHERE id = $2 AND status = $3
	`

	res, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return mapError("update event status", err)
	}

	return expectOne(res, domain.NewError(domain.KindConflict, "event status changed concurrently"))
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return mapError("delete event", err)
	}

	return expectOne(res, domain.ErrEventNotFound)
}

func (r *EventRepository) List(ctx context.Context) ([]domain.Event, error) {
	return r.query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY event_date, event_time, id`)
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.Event, error) {
	return r.query(ctx, `SELECT `+eventColumns+` FROM events WHERE organizer_id = $1 ORDER BY event_date, event_time, id`, organizerID)
}

func (r *EventRepository) ListByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	return r.query(ctx, `SELECT `+eventColumns+` FROM events WHERE status = $1 ORDER BY event_date, event_time, id`, status)
}

// Search matches title and venue partially and case-insensitively, date and status exactly.
func (r *EventRepository) Search(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	query, args := buildSearch(filter)
	return r.query(ctx, query, args...)
}

func buildSearch(filter domain.EventFilter) (string, []any) {
	var conds []string
	var args []any

	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.Title != "" {
		add(`title ILIKE $%d`, "%"+escapeLike(filter.Title)+"%")
	}
	if filter.Venue != "" {
		add(`venue ILIKE $%d`, "%"+escapeLike(filter.Venue)+"%")
	}
	if filter.Date != nil {
		add(`event_date = $%d`, *filter.Date)
	}
	if filter.Status != "" {
		add(`status = $%d`, filter.Status)
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY event_date, event_time, id`

	return query, args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (r *EventRepository) query(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("query events", err)
	}

	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, mapError("scan event", err)
		}

		events = append(events, *e)
	}

	return events, rows.Err()
}
