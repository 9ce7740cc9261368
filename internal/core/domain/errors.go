package domain

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindValidationFailed     Kind = "VALIDATION_FAILED"
	KindSessionInvalid       Kind = "SESSION_INVALID"
	KindForbidden            Kind = "FORBIDDEN"
	KindProtectedLastAdmin   Kind = "PROTECTED_LAST_ADMIN"
	KindEventNotFound        Kind = "EVENT_NOT_FOUND"
	KindNotFound             Kind = "NOT_FOUND"
	KindInsufficientCapacity Kind = "INSUFFICIENT_CAPACITY"
	KindConflict             Kind = "CONFLICT"
	KindPersistenceFailed    Kind = "PERSISTENCE_FAILED"
)

// FieldError names one rejected input field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error is the outcome type returned by every core operation.
// Two errors are equal under errors.Is when their kinds match.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Cause   error
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}

	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

var (
	ErrValidationFailed     = &Error{Kind: KindValidationFailed, Message: "validation failed"}
	ErrSessionInvalid       = &Error{Kind: KindSessionInvalid, Message: "session is missing or invalid"}
	ErrForbidden            = &Error{Kind: KindForbidden, Message: "access denied"}
	ErrProtectedLastAdmin   = &Error{Kind: KindProtectedLastAdmin, Message: "cannot delete the last admin user"}
	ErrEventNotFound        = &Error{Kind: KindEventNotFound, Message: "event not found"}
	ErrNotFound             = &Error{Kind: KindNotFound, Message: "resource not found"}
	ErrInsufficientCapacity = &Error{Kind: KindInsufficientCapacity, Message: "not enough tickets available"}
	ErrConflict             = &Error{Kind: KindConflict, Message: "conflict"}
	ErrPersistenceFailed    = &Error{Kind: KindPersistenceFailed, Message: "internal error"}
)

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WrapError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func ValidationError(fields ...FieldError) *Error {
	return &Error{Kind: KindValidationFailed, Message: "validation failed", Fields: fields}
}

// KindOf reports the kind of err, or PERSISTENCE_FAILED for foreign errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindPersistenceFailed
}
