package mocks

import (
	"context"

	domain "github.com/srgjo27/event_ticketing/internal/core/domain"
	services "github.com/srgjo27/event_ticketing/internal/core/services"
	mock "github.com/stretchr/testify/mock"
)

// BookingService is a mock type for the BookingService type
type BookingService struct {
	mock.Mock
}

// Book provides a mock function with given fields: ctx, p, req
func (_m *BookingService) Book(ctx context.Context, p *domain.Principal, req services.BookingRequest) (*domain.Registration, error) {
	ret := _m.Called(ctx, p, req)

	if len(ret) == 0 {
		panic("no return value specified for Book")
	}

	var r0 *domain.Registration
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, services.BookingRequest) (*domain.Registration, error)); ok {
		return rf(ctx, p, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, services.BookingRequest) *domain.Registration); ok {
		r0 = rf(ctx, p, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Registration)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, services.BookingRequest) error); ok {
		r1 = rf(ctx, p, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Cancel provides a mock function with given fields: ctx, p, registrationID
func (_m *BookingService) Cancel(ctx context.Context, p *domain.Principal, registrationID string) (*domain.Registration, error) {
	ret := _m.Called(ctx, p, registrationID)

	if len(ret) == 0 {
		panic("no return value specified for Cancel")
	}

	var r0 *domain.Registration
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (*domain.Registration, error)); ok {
		return rf(ctx, p, registrationID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) *domain.Registration); ok {
		r0 = rf(ctx, p, registrationID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Registration)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, string) error); ok {
		r1 = rf(ctx, p, registrationID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Get provides a mock function with given fields: ctx, p, registrationID
func (_m *BookingService) Get(ctx context.Context, p *domain.Principal, registrationID string) (*domain.Registration, error) {
	ret := _m.Called(ctx, p, registrationID)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *domain.Registration
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (*domain.Registration, error)); ok {
		return rf(ctx, p, registrationID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) *domain.Registration); ok {
		r0 = rf(ctx, p, registrationID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Registration)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, string) error); ok {
		r1 = rf(ctx, p, registrationID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListMine provides a mock function with given fields: ctx, p
func (_m *BookingService) ListMine(ctx context.Context, p *domain.Principal) ([]domain.Registration, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for ListMine")
	}

	var r0 []domain.Registration
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) ([]domain.Registration, error)); ok {
		return rf(ctx, p)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) []domain.Registration); ok {
		r0 = rf(ctx, p)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Registration)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal) error); ok {
		r1 = rf(ctx, p)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewBookingService creates a new instance of BookingService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewBookingService(t interface {
	mock.TestingT
	Cleanup(func())
}) *BookingService {
	m := &BookingService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
