package mocks

import (
	"context"
	"time"

	domain "github.com/srgjo27/event_ticketing/internal/core/domain"
	mock "github.com/stretchr/testify/mock"
)

// RegistrationRepository is a mock type for the RegistrationRepository type
type RegistrationRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, reg
func (_m *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	ret := _m.Called(ctx, reg)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Registration) error); ok {
		r0 = rf(ctx, reg)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *RegistrationRepository) GetByID(ctx context.Context, id int64) (*domain.Registration, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetByID")
	}

	var r0 *domain.Registration
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.Registration, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Registration); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Registration)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListByUser provides a mock function with given fields: ctx, userID
func (_m *RegistrationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Registration, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListByUser")
	}

	var r0 []domain.Registration
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]domain.Registration, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []domain.Registration); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Registration)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListByEvent provides a mock function with given fields: ctx, eventID
func (_m *RegistrationRepository) ListByEvent(ctx context.Context, eventID int64) ([]domain.Registration, error) {
	ret := _m.Called(ctx, eventID)

	if len(ret) == 0 {
		panic("no return value specified for ListByEvent")
	}

	var r0 []domain.Registration
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) ([]domain.Registration, error)); ok {
		return rf(ctx, eventID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) []domain.Registration); ok {
		r0 = rf(ctx, eventID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Registration)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, eventID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CountActiveByEvent provides a mock function with given fields: ctx, eventID
func (_m *RegistrationRepository) CountActiveByEvent(ctx context.Context, eventID int64) (int, error) {
	ret := _m.Called(ctx, eventID)

	if len(ret) == 0 {
		panic("no return value specified for CountActiveByEvent")
	}

	var r0 int
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (int, error)); ok {
		return rf(ctx, eventID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) int); ok {
		r0 = rf(ctx, eventID)
	} else {
		r0 = ret.Get(0).(int)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, eventID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Cancel provides a mock function with given fields: ctx, id, at
func (_m *RegistrationRepository) Cancel(ctx context.Context, id int64, at time.Time) error {
	ret := _m.Called(ctx, id, at)

	if len(ret) == 0 {
		panic("no return value specified for Cancel")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, time.Time) error); ok {
		r0 = rf(ctx, id, at)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewRegistrationRepository creates a new instance of RegistrationRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewRegistrationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RegistrationRepository {
	m := &RegistrationRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
