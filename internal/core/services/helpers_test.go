package services_test

import (
	"testing"
	"time"

	"github.com/srgjo27/event_ticketing/internal/core/access"
	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/srgjo27/event_ticketing/internal/core/ledger"
	"github.com/srgjo27/event_ticketing/internal/core/ports/mocks"
	"github.com/srgjo27/event_ticketing/internal/core/services"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type fixture struct {
	events *mocks.EventRepository
	pools  *mocks.TicketPoolRepository
	regs   *mocks.RegistrationRepository
	users  *mocks.UserRepository
	cache  *mocks.AvailabilityCache
	audit  *mocks.AuditSink
	ledger *ledger.Ledger
	gate   *access.Gate
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		events: mocks.NewEventRepository(t),
		pools:  mocks.NewTicketPoolRepository(t),
		regs:   mocks.NewRegistrationRepository(t),
		users:  mocks.NewUserRepository(t),
		cache:  mocks.NewAvailabilityCache(t),
		audit:  mocks.NewAuditSink(t),
	}
	f.ledger = ledger.New(f.pools)
	f.gate = access.NewGate(f.audit)
	return f
}

func (f *fixture) bookingService() *services.BookingService {
	return services.NewBookingService(f.events, f.regs, f.ledger, f.gate, f.cache, zap.NewNop())
}

func (f *fixture) eventService() *services.EventService {
	return services.NewEventService(f.events, f.pools, f.regs, f.ledger, f.gate, f.cache, zap.NewNop())
}

func (f *fixture) expectAudit(times int) {
	f.audit.On("Record", mock.AnythingOfType("domain.AuditEvent")).Times(times)
}

func attendee(id int64) *domain.Principal {
	return &domain.Principal{UserID: id, Role: domain.RoleAttendee}
}

func organizer(id int64) *domain.Principal {
	return &domain.Principal{UserID: id, Role: domain.RoleOrganizer}
}

func admin(id int64) *domain.Principal {
	return &domain.Principal{UserID: id, Role: domain.RoleAdmin}
}

func daysFromNow(n int) time.Time {
	y, m, d := time.Now().AddDate(0, 0, n).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func approvedEvent(id, organizerID int64) *domain.Event {
	return &domain.Event{
		ID:          id,
		OrganizerID: organizerID,
		Title:       "Jazz Night",
		Venue:       "Blue Hall",
		Date:        daysFromNow(7),
		Time:        "19:00",
		Status:      domain.EventApproved,
	}
}
