package domain

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated identity bound to a session.
type Principal struct {
	SessionID    uuid.UUID `json:"session_id"`
	UserID       int64     `json:"user_id"`
	Role         Role      `json:"role"`
	DisplayName  string    `json:"display_name"`
	Email        string    `json:"email"`
	SessionStart time.Time `json:"session_start"`
}

func (p *Principal) Valid() bool {
	return p != nil && p.UserID > 0 && p.Role != ""
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role.Matches(RoleAdmin)
}
