package authz_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/authz"
	"github.com/spec-kit/helpdesk/internal/domain"
)

func TestCan(t *testing.T) {
	t.Run("admin capabilities", func(t *testing.T) {
		for _, capability := range []authz.Capability{
			authz.CapViewAllTickets,
			authz.CapCreateTicketForDept,
			authz.CapRespondTickets,
			authz.CapManageInventory,
			authz.CapManageSettings,
			authz.CapViewDashboard,
		} {
			require.True(t, authz.Can(domain.RoleAdmin, capability), string(capability))
		}
		require.False(t, authz.Can(domain.RoleAdmin, authz.CapViewOwnTickets))
	})

	t.Run("department capabilities", func(t *testing.T) {
		require.True(t, authz.Can(domain.RoleDepartment, authz.CapViewOwnTickets))
		require.True(t, authz.Can(domain.RoleDepartment, authz.CapCreateOwnTicket))

		for _, capability := range []authz.Capability{
			authz.CapViewAllTickets,
			authz.CapCreateTicketForDept,
			authz.CapRespondTickets,
			authz.CapManageInventory,
			authz.CapManageSettings,
			authz.CapViewDashboard,
		} {
			require.False(t, authz.Can(domain.RoleDepartment, capability), string(capability))
		}
	})

	t.Run("unknown role grants nothing", func(t *testing.T) {
		require.False(t, authz.Can(domain.Role("intruder"), authz.CapViewOwnTickets))
	})
}

func TestCanViewTicket(t *testing.T) {
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	dept := &domain.User{ID: 7, Role: domain.RoleDepartment}

	own := domain.Ticket{ID: 10, UserID: 7}
	foreign := domain.Ticket{ID: 11, UserID: 3}

	require.True(t, authz.CanViewTicket(admin, own))
	require.True(t, authz.CanViewTicket(admin, foreign))
	require.True(t, authz.CanViewTicket(dept, own))
	require.False(t, authz.CanViewTicket(dept, foreign))
	require.False(t, authz.CanViewTicket(nil, own))
}

func TestViews(t *testing.T) {
	require.Equal(t, authz.ViewAdminHome, authz.DefaultView(domain.RoleAdmin))
	require.Equal(t, authz.ViewDeptHome, authz.DefaultView(domain.RoleDepartment))

	require.Equal(t, []authz.View{
		authz.ViewAdminHome,
		authz.ViewAdminTickets,
		authz.ViewAdminInventory,
		authz.ViewAdminSettings,
	}, authz.ViewsFor(domain.RoleAdmin))

	require.True(t, authz.CanNavigate(domain.RoleDepartment, authz.ViewDeptTickets))
	require.False(t, authz.CanNavigate(domain.RoleDepartment, authz.ViewAdminInventory))
	require.False(t, authz.CanNavigate(domain.RoleAdmin, authz.ViewDeptHome))
}
