package services

import (
	"context"
	"time"

	"github.com/srgjo27/event_ticketing/internal/core/access"
	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/srgjo27/event_ticketing/internal/core/ledger"
	"github.com/srgjo27/event_ticketing/internal/core/ports"
	"github.com/srgjo27/event_ticketing/internal/core/validation"
	"go.uber.org/zap"
)

type BookingRequest struct {
	EventID  string
	Quantity string
}

type BookingService struct {
	events ports.EventRepository
	regs   ports.RegistrationRepository
	ledger *ledger.Ledger
	gate   *access.Gate
	cache  ports.AvailabilityCache
	logger *zap.Logger
	now    func() time.Time
}

func NewBookingService(
	events ports.EventRepository,
	regs ports.RegistrationRepository,
	ledger *ledger.Ledger,
	gate *access.Gate,
	cache ports.AvailabilityCache,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		events: events,
		regs:   regs,
		ledger: ledger,
		gate:   gate,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Book admits quantity tickets for the caller: validate, authorize, reserve,
// persist. A failed persist releases the reservation again.
func (s *BookingService) Book(ctx context.Context, p *domain.Principal, req BookingRequest) (*domain.Registration, error) {
	var c validation.Collector
	eventID := int64(c.PositiveInt(req.EventID, "event_id"))
	quantity := c.PositiveInt(req.Quantity, "quantity")
	if err := c.Err(); err != nil {
		return nil, err
	}

	if err := s.gate.Authorize(p, access.BookTickets, nil); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, internalError(s.logger, "get event", err, zap.Int64("event_id", eventID))
	}

	now := s.now()
	if !event.IsBookable(now) {
		return nil, domain.NewError(domain.KindEventNotFound, "event is not open for booking")
	}

	if err := s.ledger.Reserve(ctx, eventID, quantity); err != nil {
		return nil, internalError(s.logger, "reserve tickets", err, zap.Int64("event_id", eventID))
	}

	reg := &domain.Registration{
		EventID:    eventID,
		UserID:     p.UserID,
		Quantity:   quantity,
		Status:     domain.RegistrationActive,
		CreatedAt:  now,
		EventTitle: event.Title,
	}

	if err := s.regs.Create(ctx, reg); err != nil {
		s.rollbackReservation(ctx, eventID, quantity)
		s.logger.Error("failed to persist registration",
			zap.Int64("event_id", eventID),
			zap.Int64("user_id", p.UserID),
			zap.Int("quantity", quantity),
			zap.Error(err),
		)
		return nil, domain.WrapError(domain.KindPersistenceFailed, "internal error", err)
	}

	s.invalidate(ctx, eventID)

	s.logger.Info("registration created",
		zap.Int64("registration_id", reg.ID),
		zap.Int64("event_id", eventID),
		zap.Int64("user_id", p.UserID),
		zap.Int("quantity", quantity),
	)

	return reg, nil
}

// Cancel flips the caller's registration to CANCELLED and returns its tickets.
func (s *BookingService) Cancel(ctx context.Context, p *domain.Principal, registrationID string) (*domain.Registration, error) {
	id, err := parseID(registrationID, "registration_id")
	if err != nil {
		return nil, err
	}

	reg, err := s.get(ctx, p, id)
	if err != nil {
		return nil, err
	}

	if !reg.IsActive() {
		return nil, domain.NewError(domain.KindConflict, "registration is already cancelled")
	}

	// The pool has to be in memory before the row flips, otherwise a lazy load
	// would already exclude this registration and the release would count twice.
	if err := s.ledger.Ensure(ctx, reg.EventID); err != nil {
		return nil, internalError(s.logger, "load ticket pool", err, zap.Int64("event_id", reg.EventID))
	}

	now := s.now()
	if err := s.regs.Cancel(ctx, reg.ID, now); err != nil {
		return nil, internalError(s.logger, "cancel registration", err, zap.Int64("registration_id", reg.ID))
	}

	if err := s.ledger.Release(ctx, reg.EventID, reg.Quantity); err != nil {
		return nil, internalError(s.logger, "release tickets", err, zap.Int64("event_id", reg.EventID))
	}

	s.invalidate(ctx, reg.EventID)

	reg.Status = domain.RegistrationCancelled
	reg.CancelledAt = &now

	s.logger.Info("registration cancelled",
		zap.Int64("registration_id", reg.ID),
		zap.Int64("event_id", reg.EventID),
		zap.Int64("user_id", p.UserID),
		zap.Int("quantity", reg.Quantity),
	)

	return reg, nil
}

func (s *BookingService) Get(ctx context.Context, p *domain.Principal, registrationID string) (*domain.Registration, error) {
	id, err := parseID(registrationID, "registration_id")
	if err != nil {
		return nil, err
	}
	return s.get(ctx, p, id)
}

func (s *BookingService) get(ctx context.Context, p *domain.Principal, id int64) (*domain.Registration, error) {
	if err := s.gate.Authorize(p, access.BookTickets, nil); err != nil {
		return nil, err
	}

	reg, err := s.regs.GetByID(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, "get registration", err, zap.Int64("registration_id", id))
	}

	if err := s.gate.Authorize(p, access.ManageBooking, reg); err != nil {
		return nil, err
	}

	return reg, nil
}

// ListMine returns the caller's own registrations, newest first.
func (s *BookingService) ListMine(ctx context.Context, p *domain.Principal) ([]domain.Registration, error) {
	if err := s.gate.Authorize(p, access.BookTickets, nil); err != nil {
		return nil, err
	}

	regs, err := s.regs.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, internalError(s.logger, "list registrations", err, zap.Int64("user_id", p.UserID))
	}
	return regs, nil
}

func (s *BookingService) rollbackReservation(ctx context.Context, eventID int64, quantity int) {
	if err := s.ledger.Release(context.WithoutCancel(ctx), eventID, quantity); err != nil {
		s.logger.Error("failed to release reservation",
			zap.Int64("event_id", eventID),
			zap.Int("quantity", quantity),
			zap.Error(err),
		)
	}
}

func (s *BookingService) invalidate(ctx context.Context, eventID int64) {
	if err := s.cache.Invalidate(ctx, eventID); err != nil {
		s.logger.Warn("failed to invalidate availability snapshot",
			zap.Int64("event_id", eventID),
			zap.Error(err),
		)
	}
}
