// Package access decides whether a principal may perform an operation.
package access

import (
	"fmt"
	"strconv"
	"time"

	"github.com/srgjo27/event_ticketing/internal/core/domain"
	"github.com/srgjo27/event_ticketing/internal/core/ports"
)

// Resource is anything with an owning user.
type Resource interface {
	OwnerID() int64
}

// Permission describes who may perform an operation. When Ownership is set the
// principal must also own the resource, unless it is an admin. OwnerOnly takes
// the admin exemption away.
type Permission struct {
	Name      string
	Roles     []domain.Role
	Ownership bool
	OwnerOnly bool
}

var (
	BrowseEvents    = Permission{Name: "browse events", Roles: domain.Roles}
	BookTickets     = Permission{Name: "book tickets", Roles: domain.Roles}
	ManageBooking   = Permission{Name: "manage registration", Roles: domain.Roles, Ownership: true, OwnerOnly: true}
	ManageProfile   = Permission{Name: "manage profile", Roles: domain.Roles, Ownership: true}
	ReviewEvent     = Permission{Name: "review event", Roles: []domain.Role{domain.RoleAdmin}}
	AdministerUsers = Permission{Name: "administer users", Roles: []domain.Role{domain.RoleAdmin}}

	CreateEvent = Permission{
		Name:  "create event",
		Roles: []domain.Role{domain.RoleAdmin, domain.RoleOrganizer},
	}

	ManageEvent = Permission{
		Name:      "manage event",
		Roles:     []domain.Role{domain.RoleAdmin, domain.RoleOrganizer},
		Ownership: true,
	}
)

type Gate struct {
	audit ports.AuditSink
	now   func() time.Time
}

func NewGate(audit ports.AuditSink) *Gate {
	return &Gate{audit: audit, now: time.Now}
}

// Authorize returns nil when p holds perm over res. res may be nil for
// permissions without an ownership rule.
func (g *Gate) Authorize(p *domain.Principal, perm Permission, res Resource) error {
	if !p.Valid() {
		g.deny(p, fmt.Sprintf("Invalid session attempting to %s", perm.Name))
		return domain.ErrSessionInvalid
	}

	if !p.Role.HasRole(perm.Roles...) {
		g.deny(p, fmt.Sprintf("Role %s not permitted to %s", p.Role, perm.Name))
		return domain.NewError(domain.KindForbidden, "access denied: insufficient role to "+perm.Name)
	}

	if perm.Ownership && (perm.OwnerOnly || !p.IsAdmin()) {
		if res == nil || res.OwnerID() != p.UserID {
			g.deny(p, fmt.Sprintf("User attempted to %s owned by someone else", perm.Name))
			return domain.NewError(domain.KindForbidden, "access denied: "+perm.Name+" requires ownership")
		}
	}

	return nil
}

// AuthorizeUserDeletion additionally refuses to delete the last remaining admin.
func (g *Gate) AuthorizeUserDeletion(p *domain.Principal, target *domain.User, adminCount int) error {
	if err := g.Authorize(p, AdministerUsers, nil); err != nil {
		return err
	}

	if target.Role.Matches(domain.RoleAdmin) && adminCount <= 1 {
		g.deny(p, fmt.Sprintf("Attempt to delete the last admin user %d", target.ID))
		return domain.ErrProtectedLastAdmin
	}

	return nil
}

// Record forwards a security event that did not come from a gate decision.
func (g *Gate) Record(p *domain.Principal, description string) {
	g.deny(p, description)
}

func (g *Gate) deny(p *domain.Principal, description string) {
	if g.audit == nil {
		return
	}

	ev := domain.AuditEvent{
		Description: description,
		Timestamp:   g.now(),
		UserID:      "none",
		Role:        "none",
	}
	if p != nil {
		if p.UserID > 0 {
			ev.UserID = strconv.FormatInt(p.UserID, 10)
		}
		if p.Role != "" {
			ev.Role = string(p.Role)
		}
	}

	g.audit.Record(ev)
}
