package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/srgjo27/event_ticketing/internal/core/access"
	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/srgjo27/event_ticketing/internal/core/ledger"
	"github.com/srgjo27/event_ticketing/internal/core/ports"
	"github.com/srgjo27/event_ticketing/internal/core/validation"
	"go.uber.org/zap"
)

type EventInput struct {
	Title       string
	Description string
	Date        string
	Time        string
	Venue       string
	Capacity    string
	Status      string
}

type SearchInput struct {
	Title  string
	Venue  string
	Date   string
	Status string
}

// EventDetails is an event together with its current admission numbers.
type EventDetails struct {
	domain.Event
	Capacity  int `json:"capacity,omitempty"`
	Available int `json:"available"`
}

type EventService struct {
	events ports.EventRepository
	pools  ports.TicketPoolRepository
	regs   ports.RegistrationRepository
	ledger *ledger.Ledger
	gate   *access.Gate
	cache  ports.AvailabilityCache
	logger *zap.Logger
	now    func() time.Time
}

func NewEventService(
	events ports.EventRepository,
	pools ports.TicketPoolRepository,
	regs ports.RegistrationRepository,
	ledger *ledger.Ledger,
	gate *access.Gate,
	cache ports.AvailabilityCache,
	logger *zap.Logger,
) *EventService {
	return &EventService{
		events: events,
		pools:  pools,
		regs:   regs,
		ledger: ledger,
		gate:   gate,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

func (s *EventService) Create(ctx context.Context, p *domain.Principal, in EventInput) (*EventDetails, error) {
	var c validation.Collector
	event := s.collectEvent(&c, in)
	capacity := c.NonNegativeInt(in.Capacity, "capacity")
	if err := c.Err(); err != nil {
		return nil, err
	}

	if err := s.gate.Authorize(p, access.CreateEvent, nil); err != nil {
		return nil, err
	}

	now := s.now()
	event.OrganizerID = p.UserID
	event.Status = domain.EventPending
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.events.Create(ctx, &event, capacity); err != nil {
		return nil, internalError(s.logger, "create event", err, zap.Int64("organizer_id", p.UserID))
	}

	s.ledger.Track(domain.TicketPool{EventID: event.ID, TotalCapacity: capacity})

	s.logger.Info("event created",
		zap.Int64("event_id", event.ID),
		zap.Int64("organizer_id", p.UserID),
		zap.Int("capacity", capacity),
	)

	return &EventDetails{Event: event, Capacity: capacity, Available: capacity}, nil
}

// Update edits an owned event. A blank capacity leaves it unchanged.
func (s *EventService) Update(ctx context.Context, p *domain.Principal, eventID string, in EventInput) (*EventDetails, error) {
	var c validation.Collector
	id := int64(c.PositiveInt(eventID, "event_id"))
	fields := s.collectEvent(&c, in)
	capacity := -1
	if strings.TrimSpace(in.Capacity) != "" {
		capacity = c.NonNegativeInt(in.Capacity, "capacity")
	}
	var status domain.EventStatus
	if strings.TrimSpace(in.Status) != "" {
		var ok bool
		if status, ok = domain.ParseEventStatus(strings.ToUpper(strings.TrimSpace(in.Status))); !ok {
			c.Add("status", "must be one of PENDING, APPROVED, REJECTED")
		}
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	event, err := s.load(ctx, p, id, access.ManageEvent)
	if err != nil {
		return nil, err
	}

	changeStatus := status != "" && status != event.Status
	if changeStatus {
		if !p.IsAdmin() {
			s.gate.Record(p, fmt.Sprintf("Non-admin attempted to change status of event %d", id))
			return nil, domain.NewError(domain.KindForbidden, "only admins can change event status")
		}
		if err := checkTransition(event.Status, status); err != nil {
			return nil, err
		}
	}

	original := *event
	event.Title = fields.Title
	event.Description = fields.Description
	event.Date = fields.Date
	event.Time = fields.Time
	event.Venue = fields.Venue
	event.UpdatedAt = s.now()

	// Capacity is checked against the ledger before anything is written, so a
	// refused resize leaves the event untouched.
	previous, err := s.resize(ctx, id, capacity)
	if err != nil {
		return nil, err
	}

	if err := s.events.Update(ctx, event); err != nil {
		s.restoreCapacity(ctx, id, capacity, previous)
		return nil, internalError(s.logger, "update event", err, zap.Int64("event_id", id))
	}

	if changeStatus {
		if err := s.transition(ctx, event, status); err != nil {
			s.restoreEvent(ctx, &original)
			s.restoreCapacity(ctx, id, capacity, previous)
			return nil, err
		}
	}

	s.invalidate(ctx, id)

	s.logger.Info("event updated", zap.Int64("event_id", id), zap.Int64("user_id", p.UserID))

	return s.details(ctx, event)
}

// resize applies a new capacity to the ledger and storage and returns the
// previous one. A negative capacity means no change and returns -1.
func (s *EventService) resize(ctx context.Context, eventID int64, capacity int) (int, error) {
	if capacity < 0 {
		return -1, nil
	}

	previous, err := s.ledger.Resize(ctx, eventID, capacity)
	if err != nil {
		return -1, internalError(s.logger, "resize ticket pool", err, zap.Int64("event_id", eventID))
	}

	if previous == capacity {
		return previous, nil
	}

	if err := s.pools.SetCapacity(ctx, eventID, capacity); err != nil {
		if _, rerr := s.ledger.Resize(context.WithoutCancel(ctx), eventID, previous); rerr != nil {
			s.logger.Error("failed to restore capacity", zap.Int64("event_id", eventID), zap.Error(rerr))
		}
		return -1, internalError(s.logger, "save capacity", err, zap.Int64("event_id", eventID))
	}

	return previous, nil
}

// restoreCapacity undoes a successful resize. Bookings taken in the meantime
// may make the old capacity unreachable; the new one is then kept everywhere.
func (s *EventService) restoreCapacity(ctx context.Context, eventID int64, capacity, previous int) {
	if previous < 0 || previous == capacity {
		return
	}

	ctx = context.WithoutCancel(ctx)
	if _, err := s.ledger.Resize(ctx, eventID, previous); err != nil {
		s.logger.Error("failed to restore capacity", zap.Int64("event_id", eventID), zap.Error(err))
		return
	}
	if err := s.pools.SetCapacity(ctx, eventID, previous); err != nil {
		s.logger.Error("failed to restore stored capacity", zap.Int64("event_id", eventID), zap.Error(err))
	}
}

func (s *EventService) restoreEvent(ctx context.Context, original *domain.Event) {
	if err := s.events.Update(context.WithoutCancel(ctx), original); err != nil {
		s.logger.Error("failed to restore event", zap.Int64("event_id", original.ID), zap.Error(err))
	}
}

func (s *EventService) Approve(ctx context.Context, p *domain.Principal, eventID string) (*EventDetails, error) {
	return s.review(ctx, p, eventID, domain.EventApproved)
}

func (s *EventService) Reject(ctx context.Context, p *domain.Principal, eventID string) (*EventDetails, error) {
	return s.review(ctx, p, eventID, domain.EventRejected)
}

func (s *EventService) review(ctx context.Context, p *domain.Principal, eventID string, to domain.EventStatus) (*EventDetails, error) {
	id, err := parseID(eventID, "event_id")
	if err != nil {
		return nil, err
	}

	event, err := s.load(ctx, p, id, access.ReviewEvent)
	if err != nil {
		return nil, err
	}

	if err := s.transition(ctx, event, to); err != nil {
		return nil, err
	}

	s.logger.Info("event reviewed",
		zap.Int64("event_id", id),
		zap.String("status", string(to)),
		zap.Int64("admin_id", p.UserID),
	)

	details, err := s.details(ctx, event)
	if err != nil {
		return nil, err
	}

	if to == domain.EventApproved {
		s.snapshot(ctx, id, details.Available)
	}

	return details, nil
}

// transition applies PENDING -> APPROVED or PENDING -> REJECTED.
func (s *EventService) transition(ctx context.Context, event *domain.Event, to domain.EventStatus) error {
	if err := checkTransition(event.Status, to); err != nil {
		return err
	}

	if err := s.events.UpdateStatus(ctx, event.ID, domain.EventPending, to); err != nil {
		return internalError(s.logger, "update event status", err, zap.Int64("event_id", event.ID))
	}

	event.Status = to
	return nil
}

// Delete removes an event. It is refused while any tickets are booked.
func (s *EventService) Delete(ctx context.Context, p *domain.Principal, eventID string) error {
	id, err := parseID(eventID, "event_id")
	if err != nil {
		return err
	}

	if _, err := s.load(ctx, p, id, access.ManageEvent); err != nil {
		return err
	}

	if err := s.ledger.Retire(ctx, id); err != nil {
		return internalError(s.logger, "retire ticket pool", err, zap.Int64("event_id", id))
	}

	active, err := s.regs.CountActiveByEvent(ctx, id)
	if err != nil {
		s.ledger.Reopen(id)
		return internalError(s.logger, "count registrations", err, zap.Int64("event_id", id))
	}

	if active > 0 {
		s.ledger.Reopen(id)
		return domain.NewError(domain.KindConflict,
			fmt.Sprintf("cannot delete event with %d active registrations", active))
	}

	if err := s.events.Delete(ctx, id); err != nil {
		s.ledger.Reopen(id)
		return internalError(s.logger, "delete event", err, zap.Int64("event_id", id))
	}

	s.ledger.Drop(id)
	s.invalidate(ctx, id)

	s.logger.Info("event deleted", zap.Int64("event_id", id), zap.Int64("user_id", p.UserID))

	return nil
}

// Get returns one event. Unapproved events are only visible to their owner and admins.
func (s *EventService) Get(ctx context.Context, p *domain.Principal, eventID string) (*EventDetails, error) {
	id, err := parseID(eventID, "event_id")
	if err != nil {
		return nil, err
	}

	event, err := s.load(ctx, p, id, access.BrowseEvents)
	if err != nil {
		return nil, err
	}

	if !visible(p, event) {
		return nil, domain.ErrEventNotFound
	}

	return s.details(ctx, event)
}

// Browse lists approved future events that still have tickets left.
func (s *EventService) Browse(ctx context.Context, p *domain.Principal) ([]EventDetails, error) {
	if err := s.gate.Authorize(p, access.BrowseEvents, nil); err != nil {
		return nil, err
	}

	events, err := s.events.ListByStatus(ctx, domain.EventApproved)
	if err != nil {
		return nil, internalError(s.logger, "list approved events", err)
	}

	now := s.now()
	out := make([]EventDetails, 0, len(events))
	for _, e := range events {
		if !domain.IsFutureDay(e.Date, now) {
			continue
		}

		available, err := s.availability(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		if available <= 0 {
			continue
		}

		out = append(out, EventDetails{Event: e, Available: available})
	}

	return out, nil
}

func (s *EventService) Search(ctx context.Context, p *domain.Principal, in SearchInput) ([]EventDetails, error) {
	var c validation.Collector
	filter := domain.EventFilter{
		Title: validation.Sanitize(in.Title),
		Venue: validation.Sanitize(in.Venue),
	}
	if strings.TrimSpace(in.Date) != "" {
		d, err := validation.Date(in.Date, "date")
		if c.Check(err) {
			filter.Date = &d
		}
	}
	if strings.TrimSpace(in.Status) != "" {
		status, ok := domain.ParseEventStatus(strings.ToUpper(strings.TrimSpace(in.Status)))
		if !ok {
			c.Add("status", "must be one of PENDING, APPROVED, REJECTED")
		}
		filter.Status = status
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	if err := s.gate.Authorize(p, access.BrowseEvents, nil); err != nil {
		return nil, err
	}

	events, err := s.events.Search(ctx, filter)
	if err != nil {
		return nil, internalError(s.logger, "search events", err)
	}

	out := make([]EventDetails, 0, len(events))
	for i := range events {
		if !visible(p, &events[i]) {
			continue
		}

		available, err := s.availability(ctx, events[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, EventDetails{Event: events[i], Available: available})
	}

	return out, nil
}

// ListManaged returns the events the caller organizes, or every event for admins.
func (s *EventService) ListManaged(ctx context.Context, p *domain.Principal) ([]EventDetails, error) {
	if err := s.gate.Authorize(p, access.CreateEvent, nil); err != nil {
		return nil, err
	}

	var (
		events []domain.Event
		err    error
	)
	if p.IsAdmin() {
		events, err = s.events.List(ctx)
	} else {
		events, err = s.events.ListByOrganizer(ctx, p.UserID)
	}
	if err != nil {
		return nil, internalError(s.logger, "list events", err, zap.Int64("user_id", p.UserID))
	}

	out := make([]EventDetails, 0, len(events))
	for i := range events {
		details, err := s.details(ctx, &events[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *details)
	}

	return out, nil
}

// Registrations lists every registration of an owned event.
func (s *EventService) Registrations(ctx context.Context, p *domain.Principal, eventID string) ([]domain.Registration, error) {
	id, err := parseID(eventID, "event_id")
	if err != nil {
		return nil, err
	}

	if _, err := s.load(ctx, p, id, access.ManageEvent); err != nil {
		return nil, err
	}

	regs, err := s.regs.ListByEvent(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, "list event registrations", err, zap.Int64("event_id", id))
	}
	return regs, nil
}

func (s *EventService) collectEvent(c *validation.Collector, in EventInput) domain.Event {
	event := domain.Event{
		Title:       c.String(in.Title, "title"),
		Description: validation.Sanitize(in.Description),
		Venue:       c.String(in.Venue, "venue"),
	}

	date, err := validation.Date(in.Date, "date")
	if c.Check(err) && c.Check(validation.FutureDate(date, s.now(), "date")) {
		event.Date = date
	}

	clock, err := validation.ClockTime(in.Time, "time")
	if c.Check(err) {
		event.Time = clock
	}

	return event
}

// load fetches an event and authorizes perm against it.
func (s *EventService) load(ctx context.Context, p *domain.Principal, id int64, perm access.Permission) (*domain.Event, error) {
	if err := s.gate.Authorize(p, access.BrowseEvents, nil); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, internalError(s.logger, "get event", err, zap.Int64("event_id", id))
	}

	if err := s.gate.Authorize(p, perm, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *EventService) details(ctx context.Context, event *domain.Event) (*EventDetails, error) {
	pool, err := s.ledger.Snapshot(ctx, event.ID)
	if err != nil {
		return nil, internalError(s.logger, "load ticket pool", err, zap.Int64("event_id", event.ID))
	}

	return &EventDetails{
		Event:     *event,
		Capacity:  pool.TotalCapacity,
		Available: max(pool.Available(), 0),
	}, nil
}

// availability prefers the cached snapshot and falls back to the ledger.
func (s *EventService) availability(ctx context.Context, eventID int64) (int, error) {
	if available, ok, err := s.cache.Get(ctx, eventID); err == nil && ok {
		return available, nil
	} else if err != nil {
		s.logger.Warn("availability cache read failed", zap.Int64("event_id", eventID), zap.Error(err))
	}

	available, err := s.ledger.Available(ctx, eventID)
	if err != nil {
		return 0, internalError(s.logger, "read availability", err, zap.Int64("event_id", eventID))
	}

	s.snapshot(ctx, eventID, available)
	return available, nil
}

func (s *EventService) snapshot(ctx context.Context, eventID int64, available int) {
	if err := s.cache.Set(ctx, eventID, available); err != nil {
		s.logger.Warn("failed to store availability snapshot", zap.Int64("event_id", eventID), zap.Error(err))
	}
}

func (s *EventService) invalidate(ctx context.Context, eventID int64) {
	if err := s.cache.Invalidate(ctx, eventID); err != nil {
		s.logger.Warn("failed to invalidate availability snapshot", zap.Int64("event_id", eventID), zap.Error(err))
	}
}

func checkTransition(from, to domain.EventStatus) error {
	if from != domain.EventPending || to == domain.EventPending {
		return domain.NewError(domain.KindConflict,
			fmt.Sprintf("event is %s, only PENDING events can be approved or rejected", from))
	}
	return nil
}

func visible(p *domain.Principal, e *domain.Event) bool {
	return e.Status == domain.EventApproved || p.IsAdmin() || e.OrganizerID == p.UserID
}
