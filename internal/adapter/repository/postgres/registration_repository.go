package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
)

type RegistrationRepository struct {
	db *sql.DB
}

func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

const registrationColumns = `reg.id, reg.event_id, reg.user_id, reg.quantity, reg.status, reg.created_at, reg.cancelled_at, e.title`

func scanRegistration(row interface{ Scan(...any) error }) (*domain.Registration, error) {
	var reg domain.Registration
	var cancelledAt sql.NullTime

	err := row.Scan(
		&reg.ID,
		&reg.EventID,
		&reg.UserID,
		&reg.Quantity,
		&reg.Status,
		&reg.CreatedAt,
		&cancelledAt,
		&reg.EventTitle,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		reg.CancelledAt = &cancelledAt.Time
	}

	return &reg, nil
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
	INSERT INTO registrations (event_id, user_id, quantity, status, created_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query, reg.EventID, reg.UserID, reg.Quantity, reg.Status, reg.CreatedAt).Scan(&reg.ID)
	if err != nil {
		return mapError("insert registration", err)
	}

	return nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id int64) (*domain.Registration, error) {
	query := `
	SELECT ` + registrationColumns + `
	FROM registrations reg
	JOIN events e ON e.id = reg.event_id
	WHERE reg.id = $1
	`

	reg, err := scanRegistration(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, "registration not found")
		}
		return nil, mapError("get registration", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Registration, error) {
	return r.list(ctx, `WHERE reg.user_id = $1`, userID)
}

func (r *RegistrationRepository) ListByEvent(ctx context.Context, eventID int64) ([]domain.Registration, error) {
	return r.list(ctx, `WHERE reg.event_id = $1`, eventID)
}

func (r *RegistrationRepository) list(ctx context.Context, where string, arg any) ([]domain.Registration, error) {
	query := `
	SELECT ` + registrationColumns + `
	FROM registrations reg
	JOIN events e ON e.id = reg.event_id
	` + where + `
	ORDER BY reg.created_at DESC, reg.id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, mapError("list registrations", err)
	}

	defer rows.Close()

	regs := []domain.Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, mapError("scan registration", err)
		}

		regs = append(regs, *reg)
	}

	return regs, rows.Err()
}

func (r *RegistrationRepository) CountActiveByEvent(ctx context.Context, eventID int64) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND status = 'ACTIVE'`, eventID,
	).Scan(&n)
	if err != nil {
		return 0, mapError("count registrations", err)
	}
	return n, nil
}

// Cancel only touches a row that is still ACTIVE, so two racing cancellations
// cannot both succeed.
func (r *RegistrationRepository) Cancel(ctx context.Context, id int64, at time.Time) error {
	query := `
	UPDATE registrations
	SET status = 'CANCELLED', cancelled_at = $1
	WHERE id = $2 AND status = 'ACTIVE'
	`

	res, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return mapError("cancel registration", err)
	}

	return expectOne(res, domain.NewError(domain.KindConflict, "registration is already cancelled"))
}
