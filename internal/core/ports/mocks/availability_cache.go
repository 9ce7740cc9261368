package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// AvailabilityCache is a mock type for the AvailabilityCache type
type AvailabilityCache struct {
	mock.Mock
}

// Get provides a mock function with given fields: ctx, eventID
func (_m *AvailabilityCache) Get(ctx context.Context, eventID int64) (int, bool, error) {
	ret := _m.Called(ctx, eventID)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 int
	var r1 bool
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (int, bool, error)); ok {
		return rf(ctx, eventID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) int); ok {
		r0 = rf(ctx, eventID)
	} else {
		r0 = ret.Get(0).(int)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) bool); ok {
		r1 = rf(ctx, eventID)
	} else {
		r1 = ret.Get(1).(bool)
	}

	if rf, ok := ret.Get(2).(func(context.Context, int64) error); ok {
		r2 = rf(ctx, eventID)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// Set provides a mock function with given fields: ctx, eventID, available
func (_m *AvailabilityCache) Set(ctx context.Context, eventID int64, available int) error {
	ret := _m.Called(ctx, eventID, available)

	if len(ret) == 0 {
		panic("no return value specified for Set")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64, int) error); ok {
		r0 = rf(ctx, eventID, available)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Invalidate provides a mock function with given fields: ctx, eventID
func (_m *AvailabilityCache) Invalidate(ctx context.Context, eventID int64) error {
	ret := _m.Called(ctx, eventID)

	if len(ret) == 0 {
		panic("no return value specified for Invalidate")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, eventID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewAvailabilityCache creates a new instance of AvailabilityCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAvailabilityCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *AvailabilityCache {
	m := &AvailabilityCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
