package domain

import "time"

// AuditEvent records a security-relevant outcome such as an access denial.
type AuditEvent struct {
	Description string
	Timestamp   time.Time
	UserID      string
	Role        string
}
