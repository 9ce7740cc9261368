package mocks

import (
	"context"

	domain "github.com/srgjo27/event_ticketing/internal/core/domain"
	services "github.com/srgjo27/event_ticketing/internal/core/services"
	mock "github.com/stretchr/testify/mock"
)

// EventService is a mock type for the EventService type
type EventService struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, p, in
func (_m *EventService) Create(ctx context.Context, p *domain.Principal, in services.EventInput) (*services.EventDetails, error) {
	ret := _m.Called(ctx, p, in)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *services.EventDetails
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, services.EventInput) (*services.EventDetails, error)); ok {
		return rf(ctx, p, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, services.EventInput) *services.EventDetails); ok {
		r0 = rf(ctx, p, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*services.EventDetails)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, services.EventInput) error); ok {
		r1 = rf(ctx, p, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, p, eventID, in
func (_m *EventService) Update(ctx context.Context, p *domain.Principal, eventID string, in services.EventInput) (*services.EventDetails, error) {
	ret := _m.Called(ctx, p, eventID, in)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *services.EventDetails
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string, services.EventInput) (*services.EventDetails, error)); ok {
		return rf(ctx, p, eventID, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string, services.EventInput) *services.EventDetails); ok {
		r0 = rf(ctx, p, eventID, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*services.EventDetails)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, string, services.EventInput) error); ok {
		r1 = rf(ctx, p, eventID, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Approve provides a mock function with given fields: ctx, p, eventID
func (_m *EventService) Approve(ctx context.Context, p *domain.Principal, eventID string) (*services.EventDetails, error) {
	ret := _m.Called(ctx, p, eventID)

	if len(ret) == 0 {
		panic("no return value specified for Approve")
	}

	var r0 *services.EventDetails
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (*services.EventDetails, error)); ok {
		return rf(ctx, p, eventID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) *services.EventDetails); ok {
		r0 = rf(ctx, p, eventID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*services.EventDetails)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, string) error); ok {
		r1 = rf(ctx, p, eventID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Reject provides a mock function with given fields: ctx, p, eventID
func (_m *EventService) Reject(ctx context.Context, p *domain.Principal, eventID string) (*services.EventDetails, error) {
	ret := _m.Called(ctx, p, eventID)

	if len(ret) == 0 {
		panic("no return value specified for Reject")
	}

	var r0 *services.EventDetails
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (*services.EventDetails, error)); ok {
		return rf(ctx, p, eventID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) *services.EventDetails); ok {
		r0 = rf(ctx, p, eventID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*services.EventDetails)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, string) error); ok {
		r1 = rf(ctx, p, eventID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, p, eventID
func (_m *EventService) Delete(ctx context.Context, p *domain.Principal, eventID string) error {
	ret := _m.Called(ctx, p, eventID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) error); ok {
		r0 = rf(ctx, p, eventID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Get provides a mock function with given fields: ctx, p, eventID
func (_m *EventService) Get(ctx context.Context, p *domain.Principal, eventID string) (*services.EventDetails, error) {
	ret := _m.Called(ctx, p, eventID)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *services.EventDetails
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (*services.EventDetails, error)); ok {
		return rf(ctx, p, eventID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) *services.EventDetails); ok {
		r0 = rf(ctx, p, eventID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*services.EventDetails)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, string) error); ok {
		r1 = rf(ctx, p, eventID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Browse provides a mock function with given fields: ctx, p
func (_m *EventService) Browse(ctx context.Context, p *domain.Principal) ([]services.EventDetails, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for Browse")
	}

	var r0 []services.EventDetails
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) ([]services.EventDetails, error)); ok {
		return rf(ctx, p)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) []services.EventDetails); ok {
		r0 = rf(ctx, p)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]services.EventDetails)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal) error); ok {
		r1 = rf(ctx, p)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Search provides a mock function with given fields: ctx, p, in
func (_m *EventService) Search(ctx context.Context, p *domain.Principal, in services.SearchInput) ([]services.EventDetails, error) {
	ret := _m.Called(ctx, p, in)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 []services.EventDetails
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, services.SearchInput) ([]services.EventDetails, error)); ok {
		return rf(ctx, p, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, services.SearchInput) []services.EventDetails); ok {
		r0 = rf(ctx, p, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]services.EventDetails)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, services.SearchInput) error); ok {
		r1 = rf(ctx, p, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListManaged provides a mock function with given fields: ctx, p
func (_m *EventService) ListManaged(ctx context.Context, p *domain.Principal) ([]services.EventDetails, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for ListManaged")
	}

	var r0 []services.EventDetails
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) ([]services.EventDetails, error)); ok {
		return rf(ctx, p)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) []services.EventDetails); ok {
		r0 = rf(ctx, p)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]services.EventDetails)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal) error); ok {
		r1 = rf(ctx, p)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Registrations provides a mock function with given fields: ctx, p, eventID
func (_m *EventService) Registrations(ctx context.Context, p *domain.Principal, eventID string) ([]domain.Registration, error) {
	ret := _m.Called(ctx, p, eventID)

	if len(ret) == 0 {
		panic("no return value specified for Registrations")
	}

	var r0 []domain.Registration
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) ([]domain.Registration, error)); ok {
		return rf(ctx, p, eventID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) []domain.Registration); ok {
		r0 = rf(ctx, p, eventID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Registration)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, string) error); ok {
		r1 = rf(ctx, p, eventID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewEventService creates a new instance of EventService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewEventService(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventService {
	m := &EventService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
