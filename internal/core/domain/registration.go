package domain

import "time"

type RegistrationStatus string

const (
	RegistrationActive    RegistrationStatus = "ACTIVE"
	RegistrationCancelled RegistrationStatus = "CANCELLED"
)

type Registration struct {
	ID          int64              `json:"id"`
	EventID     int64              `json:"event_id"`
	UserID      int64              `json:"user_id"`
	Quantity    int                `json:"quantity"`
	Status      RegistrationStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	CancelledAt *time.Time         `json:"cancelled_at,omitempty"`
	EventTitle  string             `json:"event_title,omitempty"`
}

func (r *Registration) OwnerID() int64 {
	return r.UserID
}

func (r *Registration) IsActive() bool {
	return r.Status == RegistrationActive
}
