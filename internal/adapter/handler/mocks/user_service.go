package mocks

import (
	"context"

	domain "github.com/srgjo27/event_ticketing/internal/core/domain"
	services "github.com/srgjo27/event_ticketing/internal/core/services"
	mock "github.com/stretchr/testify/mock"
)

// UserService is a mock type for the UserService type
type UserService struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, p
func (_m *UserService) List(ctx context.Context, p *domain.Principal) ([]domain.User, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) ([]domain.User, error)); ok {
		return rf(ctx, p)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) []domain.User); ok {
		r0 = rf(ctx, p)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.User)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal) error); ok {
		r1 = rf(ctx, p)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Get provides a mock function with given fields: ctx, p, userID
func (_m *UserService) Get(ctx context.Context, p *domain.Principal, userID string) (*domain.User, error) {
	ret := _m.Called(ctx, p, userID)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 *domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) (*domain.User, error)); ok {
		return rf(ctx, p, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) *domain.User); ok {
		r0 = rf(ctx, p, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, string) error); ok {
		r1 = rf(ctx, p, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, p, in
func (_m *UserService) Create(ctx context.Context, p *domain.Principal, in services.UserInput) (*domain.User, error) {
	ret := _m.Called(ctx, p, in)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, services.UserInput) (*domain.User, error)); ok {
		return rf(ctx, p, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, services.UserInput) *domain.User); ok {
		r0 = rf(ctx, p, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, services.UserInput) error); ok {
		r1 = rf(ctx, p, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update provides a mock function with given fields: ctx, p, userID, in
func (_m *UserService) Update(ctx context.Context, p *domain.Principal, userID string, in services.UserInput) (*domain.User, error) {
	ret := _m.Called(ctx, p, userID, in)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string, services.UserInput) (*domain.User, error)); ok {
		return rf(ctx, p, userID, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string, services.UserInput) *domain.User); ok {
		r0 = rf(ctx, p, userID, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, string, services.UserInput) error); ok {
		r1 = rf(ctx, p, userID, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Delete provides a mock function with given fields: ctx, p, userID
func (_m *UserService) Delete(ctx context.Context, p *domain.Principal, userID string) error {
	ret := _m.Called(ctx, p, userID)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, string) error); ok {
		r0 = rf(ctx, p, userID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Profile provides a mock function with given fields: ctx, p
func (_m *UserService) Profile(ctx context.Context, p *domain.Principal) (*domain.User, error) {
	ret := _m.Called(ctx, p)

	if len(ret) == 0 {
		panic("no return value specified for Profile")
	}

	var r0 *domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) (*domain.User, error)); ok {
		return rf(ctx, p)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal) *domain.User); ok {
		r0 = rf(ctx, p)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal) error); ok {
		r1 = rf(ctx, p)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateProfile provides a mock function with given fields: ctx, p, in
func (_m *UserService) UpdateProfile(ctx context.Context, p *domain.Principal, in services.UserInput) (*domain.User, error) {
	ret := _m.Called(ctx, p, in)

	if len(ret) == 0 {
		panic("no return value specified for UpdateProfile")
	}

	var r0 *domain.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, services.UserInput) (*domain.User, error)); ok {
		return rf(ctx, p, in)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Principal, services.UserInput) *domain.User); ok {
		r0 = rf(ctx, p, in)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *domain.Principal, services.UserInput) error); ok {
		r1 = rf(ctx, p, in)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewUserService creates a new instance of UserService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewUserService(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserService {
	m := &UserService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
