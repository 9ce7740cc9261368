package mocks

import (
	"context"

	domain "github.com/srgjo27/event_ticketing/internal/core/domain"
	mock "github.com/stretchr/testify/mock"
)

// TicketPoolRepository is a mock type for the TicketPoolRepository type
type TicketPoolRepository struct {
	mock.Mock
}

// Load provides a mock function with given fields: ctx, eventID
func (_m *TicketPoolRepository) Load(ctx context.Context, eventID int64) (*domain.TicketPool, error) {
	ret := _m.Called(ctx, eventID)

	if len(ret) == 0 {
		panic("no return value specified for Load")
	}

	var r0 *domain.TicketPool
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.TicketPool, error)); ok {
		return rf(ctx, eventID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.TicketPool); ok {
		r0 = rf(ctx, eventID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.TicketPool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, eventID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SetCapacity provides a mock function with given fields: ctx, eventID, total
func (_m *TicketPoolRepository) SetCapacity(ctx context.Context, eventID int64, total int) error {
	ret := _m.Called(ctx, eventID, total)

	if len(ret) == 0 {
		panic("no return value specified for SetCapacity")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int) error); ok {
		r0 = rf(ctx, eventID, total)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewTicketPoolRepository creates a new instance of TicketPoolRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewTicketPoolRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *TicketPoolRepository {
	m := &TicketPoolRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
