package domain

import "time"

type EventStatus string

const (
	EventPending  EventStatus = "PENDING"
	EventApproved EventStatus = "APPROVED"
	EventRejected EventStatus = "REJECTED"
)

func ParseEventStatus(s string) (EventStatus, bool) {
	switch EventStatus(s) {
	case EventPending, EventApproved, EventRejected:
		return EventStatus(s), true
	}
	return "", false
}

type Event struct {
	ID          int64       `json:"id"`
	OrganizerID int64       `json:"organizer_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
	Time        string      `json:"time"`
	Venue       string      `json:"venue"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (e *Event) OwnerID() int64 {
	return e.OrganizerID
}

// IsBookable reports whether registrations may be taken for the event at now.
func (e *Event) IsBookable(now time.Time) bool {
	return e.Status == EventApproved && IsFutureDay(e.Date, now)
}

// IsFutureDay reports whether d falls on a calendar day strictly after now's.
func IsFutureDay(d, now time.Time) bool {
	dy, dm, dd := d.Date()
	ny, nm, nd := now.Date()
	if dy != ny {
		return dy > ny
	}
	if dm != nm {
		return dm > nm
	}
	return dd > nd
}

// EventFilter selects events for search. Zero fields match everything.
type EventFilter struct {
	Title  string
	Venue  string
	Date   *time.Time
	Status EventStatus
}
