package domain

import "strings"

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleOrganizer Role = "ORGANIZER"
	RoleAttendee  Role = "ATTENDEE"
)

var Roles = []Role{RoleAdmin, RoleOrganizer, RoleAttendee}

func ParseRole(s string) (Role, bool) {
	for _, r := range Roles {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, true
		}
	}
	return "", false
}

// Matches compares roles case-insensitively.
func (r Role) Matches(other Role) bool {
	return r != "" && strings.EqualFold(string(r), string(other))
}

// HasRole reports whether r is any of roles.
func (r Role) HasRole(roles ...Role) bool {
	for _, want := range roles {
		if r.Matches(want) {
			return true
		}
	}
	return false
}
