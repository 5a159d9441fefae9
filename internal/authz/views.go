package authz

import "github.com/spec-kit/helpdesk/internal/domain"

// View is a closed identifier for a navigable screen. The view layer
// maps each to a renderer; the gate only says which set a role may
// reach and where a session lands after login.
type View string

const (
	ViewAdminHome      View = "admin-home"
	ViewAdminTickets   View = "admin-tickets"
	ViewAdminInventory View = "admin-inventory"
	ViewAdminSettings  View = "admin-settings"
	ViewDeptHome       View = "dept-home"
	ViewDeptTickets    View = "dept-tickets"
)

var roleViews = map[domain.Role][]View{
	domain.RoleAdmin: {
		ViewAdminHome,
		ViewAdminTickets,
		ViewAdminInventory,
		ViewAdminSettings,
	},
	domain.RoleDepartment: {
		ViewDeptHome,
		ViewDeptTickets,
	},
}

// ViewsFor returns the views a role may navigate to, in menu order.
func ViewsFor(role domain.Role) []View {
	return append([]View(nil), roleViews[role]...)
}

// DefaultView is the landing view after login.
func DefaultView(role domain.Role) View {
	if role == domain.RoleAdmin {
		return ViewAdminHome
	}
	return ViewDeptHome
}

// CanNavigate reports whether the role may reach the view.
func CanNavigate(role domain.Role, view View) bool {
	for _, allowed := range roleViews[role] {
		if allowed == view {
			return true
		}
	}
	return false
}
