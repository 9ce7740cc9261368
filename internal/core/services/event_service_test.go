package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/srgjo27/event_ticketing/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func eventInput() services.EventInput {
	return services.EventInput{
		Title:       "Jazz Night",
		Description: "Live quartet",
		Date:        daysFromNow(10).Format("2006-01-02"),
		Time:        "19:30",
		Venue:       "Blue Hall",
		Capacity:    "50",
	}
}

func TestCreateEvent_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.events.On("Create", ctx, mock.MatchedBy(func(e *domain.Event) bool {
		return e.Status == domain.EventPending && e.OrganizerID == 7 && e.Time == "19:30"
	}), 50).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Event).ID = 12
		}).
		Return(nil)

	details, err := f.eventService().Create(ctx, organizer(7), eventInput())

	require.NoError(t, err)
	assert.Equal(t, int64(12), details.ID)
	assert.Equal(t, 50, details.Available)

	available, err := f.ledger.Available(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, 50, available)
}

func TestCreateEvent_DefaultsTimeToMidnight(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := eventInput()
	in.Time = ""
	f.events.On("Create", ctx, mock.MatchedBy(func(e *domain.Event) bool { return e.Time == "00:00" }), 50).Return(nil)

	_, err := f.eventService().Create(ctx, organizer(7), in)

	assert.NoError(t, err)
}

func TestCreateEvent_AttendeeForbidden(t *testing.T) {
	f := newFixture(t)
	f.expectAudit(1)

	_, err := f.eventService().Create(context.Background(), attendee(3), eventInput())

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateEvent_ValidationFailed(t *testing.T) {
	f := newFixture(t)

	in := eventInput()
	in.Date = daysFromNow(0).Format("2006-01-02")
	in.Capacity = "-5"
	in.Title = " "

	_, err := f.eventService().Create(context.Background(), organizer(7), in)

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	fields := make([]string, 0, len(de.Fields))
	for _, fe := range de.Fields {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"title", "date", "capacity"}, fields)
}

func TestUpdateEvent_NonOwnerOrganizerForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expectAudit(1)

	f.events.On("GetByID", ctx, int64(1)).Return(approvedEvent(1, 9), nil)

	_, err := f.eventService().Update(ctx, organizer(10), "1", eventInput())

	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateEvent_AttendeeForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expectAudit(1)

	f.events.On("GetByID", ctx, int64(1)).Return(approvedEvent(1, 3), nil)

	_, err := f.eventService().Update(ctx, attendee(3), "1", eventInput())

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateEvent_ResizesCapacity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ledger.Track(domain.TicketPool{EventID: 1, TotalCapacity: 20, BookedQuantity: 5})
	f.events.On("GetByID", ctx, int64(1)).Return(approvedEvent(1, 9), nil)
	f.events.On("Update", ctx, mock.AnythingOfType("*domain.Event")).Return(nil)
	f.pools.On("SetCapacity", ctx, int64(1), 50).Return(nil)
	f.cache.On("Invalidate", ctx, int64(1)).Return(nil)

	details, err := f.eventService().Update(ctx, organizer(9), "1", eventInput())

	require.NoError(t, err)
	assert.Equal(t, 50, details.Capacity)
	assert.Equal(t, 45, details.Available)
}

func TestUpdateEvent_CapacityBelowBookedConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ledger.Track(domain.TicketPool{EventID: 1, TotalCapacity: 100, BookedQuantity: 60})
	f.events.On("GetByID", ctx, int64(1)).Return(approvedEvent(1, 9), nil)

	in := eventInput()
	in.Title = "Renamed"
	_, err := f.eventService().Update(ctx, organizer(9), "1", in)

	assert.ErrorIs(t, err, domain.ErrConflict)
	f.events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.pools.AssertNotCalled(t, "SetCapacity", mock.Anything, mock.Anything, mock.Anything)

	pool, err := f.ledger.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, pool.TotalCapacity)
}

func TestUpdateEvent_CapacityPersistFailureRestoresLedger(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ledger.Track(domain.TicketPool{EventID: 1, TotalCapacity: 20})
	f.events.On("GetByID", ctx, int64(1)).Return(approvedEvent(1, 9), nil)
	f.pools.On("SetCapacity", ctx, int64(1), 50).Return(errors.New("timeout"))

	_, err := f.eventService().Update(ctx, organizer(9), "1", eventInput())

	assert.ErrorIs(t, err, domain.ErrPersistenceFailed)
	f.events.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	available, err := f.ledger.Available(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, available)
}

func TestUpdateEvent_SaveFailureRestoresCapacity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ledger.Track(domain.TicketPool{EventID: 1, TotalCapacity: 20})
	f.events.On("GetByID", ctx, int64(1)).Return(approvedEvent(1, 9), nil)
	f.pools.On("SetCapacity", ctx, int64(1), 50).Return(nil).Once()
	f.events.On("Update", ctx, mock.AnythingOfType("*domain.Event")).Return(errors.New("connection reset"))
	f.pools.On("SetCapacity", mock.Anything, int64(1), 20).Return(nil).Once()

	_, err := f.eventService().Update(ctx, organizer(9), "1", eventInput())

	assert.ErrorIs(t, err, domain.ErrPersistenceFailed)
	pool, err := f.ledger.Snapshot(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, pool.TotalCapacity)
}

func TestUpdateEvent_LostStatusRaceRestoresEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pending := approvedEvent(1, 9)
	pending.Status = domain.EventPending
	f.ledger.Track(domain.TicketPool{EventID: 1, TotalCapacity: 50})
	f.events.On("GetByID", ctx, int64(1)).Return(pending, nil)
	f.events.On("Update", ctx, mock.MatchedBy(func(e *domain.Event) bool { return e.Title == "Renamed" })).Return(nil).Once()
	f.events.On("UpdateStatus", ctx, int64(1), domain.EventPending, domain.EventApproved).
		Return(domain.NewError(domain.KindConflict, "event status changed concurrently"))
	f.events.On("Update", mock.Anything, mock.MatchedBy(func(e *domain.Event) bool { return e.Title == "Jazz Night" })).Return(nil).Once()

	in := eventInput()
	in.Title = "Renamed"
	in.Status = "APPROVED"
	_, err := f.eventService().Update(ctx, admin(1), "1", in)

	assert.ErrorIs(t, err, domain.ErrConflict)
	f.events.AssertNumberOfCalls(t, "Update", 2)
	f.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestUpdateEvent_OnlyAdminChangesStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expectAudit(1)

	pending := approvedEvent(1, 9)
	pending.Status = domain.EventPending
	f.events.On("GetByID", ctx, int64(1)).Return(pending, nil)

	in := eventInput()
	in.Status = "approved"
	_, err := f.eventService().Update(ctx, organizer(9), "1", in)

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestApproveEvent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pending := approvedEvent(1, 9)
	pending.Status = domain.EventPending
	f.ledger.Track(domain.TicketPool{EventID: 1, TotalCapacity: 40})
	f.events.On("GetByID", ctx, int64(1)).Return(pending, nil)
	f.events.On("UpdateStatus", ctx, int64(1), domain.EventPending, domain.EventApproved).Return(nil)
	f.cache.On("Set", ctx, int64(1), 40).Return(nil)

	details, err := f.eventService().Approve(ctx, admin(1), "1")

	require.NoError(t, err)
	assert.Equal(t, domain.EventApproved, details.Status)
}

func TestRejectEvent_OnlyFromPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.events.On("GetByID", ctx, int64(1)).Return(approvedEvent(1, 9), nil)

	_, err := f.eventService().Reject(ctx, admin(1), "1")

	assert.ErrorIs(t, err, domain.ErrConflict)
	f.events.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveEvent_OrganizerForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expectAudit(1)

	pending := approvedEvent(1, 9)
	pending.Status = domain.EventPending
	f.events.On("GetByID", ctx, int64(1)).Return(pending, nil)

	_, err := f.eventService().Approve(ctx, organizer(9), "1")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteEvent_BlockedByOutstandingBookings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ledger.Track(domain.TicketPool{EventID: 1, TotalCapacity: 10, BookedQuantity: 3})
	f.events.On("GetByID", ctx, int64(1)).Return(approvedEvent(1, 9), nil)

	err := f.eventService().Delete(ctx, organizer(9), "1")

	assert.ErrorIs(t, err, domain.ErrConflict)
	f.events.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	assert.NoError(t, f.ledger.Reserve(ctx, 1, 1))
}

func TestDeleteEvent_BlockedByActiveRegistrationCount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ledger.Track(domain.TicketPool{EventID: 1, TotalCapacity: 10})
	f.events.On("GetByID", ctx, int64(1)).Return(approvedEvent(1, 9), nil)
	f.regs.On("CountActiveByEvent", ctx, int64(1)).Return(2, nil)

	err := f.eventService().Delete(ctx, admin(1), "1")

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, f.ledger.Reserve(ctx, 1, 1))
}

func TestDeleteEvent_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ledger.Track(domain.TicketPool{EventID: 1, TotalCapacity: 10})
	f.events.On("GetByID", ctx, int64(1)).Return(approvedEvent(1, 9), nil)
	f.regs.On("CountActiveByEvent", ctx, int64(1)).Return(0, nil)
	f.events.On("Delete", ctx, int64(1)).Return(nil)
	f.cache.On("Invalidate", ctx, int64(1)).Return(nil)

	err := f.eventService().Delete(ctx, organizer(9), "1")

	require.NoError(t, err)
	assert.NotContains(t, f.ledger.Tracked(), int64(1))
}

func TestDeleteEvent_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.events.On("GetByID", ctx, int64(4)).Return(nil, domain.ErrEventNotFound)

	err := f.eventService().Delete(ctx, admin(1), "4")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBrowse_ListsFutureEventsWithCapacity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	open := *approvedEvent(1, 9)
	soldOut := *approvedEvent(2, 9)
	past := *approvedEvent(3, 9)
	past.Date = daysFromNow(-1)

	f.events.On("ListByStatus", ctx, domain.EventApproved).Return([]domain.Event{open, soldOut, past}, nil)
	f.cache.On("Get", ctx, int64(1)).Return(0, false, nil)
	f.cache.On("Set", ctx, int64(1), 8).Return(nil)
	f.cache.On("Get", ctx, int64(2)).Return(0, true, nil)
	f.ledger.Track(domain.TicketPool{EventID: 1, TotalCapacity: 10, BookedQuantity: 2})

	events, err := f.eventService().Browse(ctx, attendee(3))

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(1), events[0].ID)
	assert.Equal(t, 8, events[0].Available)
}

func TestSearch_InvalidDate(t *testing.T) {
	f := newFixture(t)

	_, err := f.eventService().Search(context.Background(), attendee(3), services.SearchInput{Date: "2024-02-30"})

	assert.ErrorIs(t, err, domain.ErrValidationFailed)
}

func TestSearch_HidesUnapprovedEventsFromAttendees(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pending := *approvedEvent(2, 9)
	pending.Status = domain.EventPending

	f.events.On("Search", ctx, domain.EventFilter{Title: "jazz"}).Return([]domain.Event{*approvedEvent(1, 9), pending}, nil)
	f.cache.On("Get", ctx, int64(1)).Return(5, true, nil)

	events, err := f.eventService().Search(ctx, attendee(3), services.SearchInput{Title: " jazz "})

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 5, events[0].Available)
}

func TestListManaged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ledger.Track(domain.TicketPool{EventID: 1, TotalCapacity: 10})
	f.events.On("ListByOrganizer", ctx, int64(9)).Return([]domain.Event{*approvedEvent(1, 9)}, nil)

	events, err := f.eventService().ListManaged(ctx, organizer(9))

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 10, events[0].Capacity)
}

func TestListManaged_AdminSeesAll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.events.On("List", ctx).Return([]domain.Event{}, nil)

	events, err := f.eventService().ListManaged(ctx, admin(1))

	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRegistrations_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.events.On("GetByID", ctx, int64(1)).Return(approvedEvent(1, 9), nil)
	f.regs.On("ListByEvent", ctx, int64(1)).Return([]domain.Registration{{ID: 3, EventID: 1}}, nil)

	regs, err := f.eventService().Registrations(ctx, organizer(9), "1")

	require.NoError(t, err)
	assert.Len(t, regs, 1)
}

func TestRefreshSnapshots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	past := *approvedEvent(2, 9)
	past.Date = daysFromNow(-3)
	f.ledger.Track(domain.TicketPool{EventID: 1, TotalCapacity: 10, BookedQuantity: 4})
	f.events.On("ListByStatus", ctx, domain.EventApproved).Return([]domain.Event{*approvedEvent(1, 9), past}, nil)
	f.cache.On("Set", ctx, int64(1), 6).Return(nil).Once()

	assert.Equal(t, 1, f.eventService().RefreshSnapshots(ctx))
}
