package validation

import (
	"errors"
	"strings"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
)

// Collector accumulates field failures so a request reports all of them at once.
type Collector struct {
	fields []domain.FieldError
}

func (c *Collector) Add(field, reason string) {
	c.fields = append(c.fields, domain.FieldError{Field: field, Reason: reason})
}

// Check records err if it is a validation failure and reports whether err was nil.
func (c *Collector) Check(err error) bool {
	if err == nil {
		return true
	}

	var de *domain.Error
	if errors.As(err, &de) && de.Kind == domain.KindValidationFailed && len(de.Fields) > 0 {
		c.fields = append(c.fields, de.Fields...)
		return false
	}

	c.Add("input", err.Error())
	return false
}

// String sanitizes s and then requires something to be left of it.
func (c *Collector) String(s, field string) string {
	v, err := Required(Sanitize(s), field)
	c.Check(err)
	return v
}

func (c *Collector) Email(s, field string) string {
	if !Email(s) {
		c.Add(field, "must be a valid email address")
		return ""
	}
	return strings.TrimSpace(s)
}

func (c *Collector) PositiveInt(s, field string) int {
	n, err := PositiveInt(s, field)
	c.Check(err)
	return n
}

func (c *Collector) NonNegativeInt(s, field string) int {
	n, err := NonNegativeInt(s, field)
	c.Check(err)
	return n
}

func (c *Collector) Empty() bool {
	return len(c.fields) == 0
}

// Err returns nil when nothing failed, otherwise a single VALIDATION_FAILED error.
func (c *Collector) Err() error {
	if len(c.fields) == 0 {
		return nil
	}
	fields := make([]domain.FieldError, len(c.fields))
	copy(fields, c.fields)
	return domain.ValidationError(fields...)
}
