// Package validation checks and normalizes untrusted request input.
// Every function is pure; failures are reported as domain.ValidationError values.
package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
)

const (
	DateLayout        = "2006-01-02"
	ClockLayout       = "15:04"
	DefaultClock      = "00:00"
	MinPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}$`)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func invalid(field, reason string) error {
	return domain.ValidationError(domain.FieldError{Field: field, Reason: reason})
}

// Email reports whether s looks like a deliverable address.
func Email(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return emailPattern.MatchString(s)
}

func Required(s, field string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid(field, "is required")
	}
	return s, nil
}

func PositiveInt(s, field string) (int, error) {
	n, err := parseInt(s, field)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, invalid(field, "must be a positive integer")
	}
	return n, nil
}

func NonNegativeInt(s, field string) (int, error) {
	n, err := parseInt(s, field)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, invalid(field, "must be a non-negative integer")
	}
	return n, nil
}

func parseInt(s, field string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, invalid(field, "is required")
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, invalid(field, "is out of range")
		}
		return 0, invalid(field, "must be a whole number")
	}
	return n, nil
}

// Date parses a strict YYYY-MM-DD calendar date.
func Date(s, field string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, invalid(field, "is required")
	}
	if !datePattern.MatchString(s) {
		return time.Time{}, invalid(field, "must use the YYYY-MM-DD format")
	}

	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, invalid(field, "is not a valid calendar date")
	}
	return d, nil
}

// FutureDate rejects dates on or before now's calendar day.
func FutureDate(d time.Time, now time.Time, field string) error {
	if !domain.IsFutureDay(d, now) {
		return invalid(field, "must be in the future")
	}
	return nil
}

// ClockTime parses an optional HH:mm time of day. Blank input yields 00:00.
func ClockTime(s, field string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultClock, nil
	}

	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return "", invalid(field, "must use the HH:mm format")
	}
	return t.Format(ClockLayout), nil
}

func Password(s, field string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", invalid(field, "is required")
	}
	if len(s) < MinPasswordLength {
		return "", invalid(field, "must be at least 6 characters long")
	}
	return s, nil
}

func Role(s, field string) (domain.Role, error) {
	r, ok := domain.ParseRole(s)
	if !ok {
		return "", invalid(field, "must be one of ADMIN, ORGANIZER, ATTENDEE")
	}
	return r, nil
}

var sanitizer = strings.NewReplacer(
	"--", "",
	"/*", "",
	"*/", "",
	";", "",
	"'", "",
	`"`, "",
	"`", "",
	"\x00", "",
)

// Sanitize strips statement separators, comment markers and quotes from free text.
func Sanitize(s string) string {
	return strings.TrimSpace(sanitizer.Replace(s))
}
