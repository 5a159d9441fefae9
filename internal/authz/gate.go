package authz

import "github.com/spec-kit/helpdesk/internal/domain"

// Capability names one operation class a role may invoke.
type Capability string

const (
	CapViewAllTickets      Capability = "view_all_tickets"
	CapViewOwnTickets      Capability = "view_own_tickets"
	CapCreateOwnTicket     Capability = "create_own_ticket"
	CapCreateTicketForDept Capability = "create_ticket_for_department"
	CapRespondTickets      Capability = "respond_tickets"
	CapManageInventory     Capability = "manage_inventory"
	CapManageSettings      Capability = "manage_settings"
	CapViewDashboard       Capability = "view_dashboard"
)

var roleCapabilities = map[domain.Role][]Capability{
	domain.RoleAdmin: {
		CapViewAllTickets,
		CapCreateTicketForDept,
		CapRespondTickets,
		CapManageInventory,
		CapManageSettings,
		CapViewDashboard,
	},
	domain.RoleDepartment: {
		CapViewOwnTickets,
		CapCreateOwnTicket,
	},
}

// Can reports whether the role grants the capability. Unknown roles
// grant nothing.
func Can(role domain.Role, capability Capability) bool {
	for _, granted := range roleCapabilities[role] {
		if granted == capability {
			return true
		}
	}
	return false
}

// CapabilitiesFor returns the role's full capability set.
func CapabilitiesFor(role domain.Role) []Capability {
	return append([]Capability(nil), roleCapabilities[role]...)
}

// CanViewTicket is the per-ticket visibility predicate: admins see
// everything, department users only their own tickets.
func CanViewTicket(user *domain.User, ticket domain.Ticket) bool {
	if user == nil {
		return false
	}
	if user.Role == domain.RoleAdmin {
		return true
	}
	return ticket.UserID == user.ID
}
