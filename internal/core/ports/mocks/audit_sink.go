package mocks

import (
	domain "github.com/srgjo27/event_ticketing/internal/core/domain"
	mock "github.com/stretchr/testify/mock"
)

// AuditSink is a mock type for the AuditSink type
type AuditSink struct {
	mock.Mock
}

// Record provides a mock function with given fields: event
func (_m *AuditSink) Record(event domain.AuditEvent) {
	_m.Called(event)
}

// NewAuditSink creates a new instance of AuditSink. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewAuditSink(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuditSink {
	m := &AuditSink{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
