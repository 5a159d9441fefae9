package identity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/identity"
)

func TestFindUser(t *testing.T) {
	roster := identity.NewDemoRoster()

	t.Run("matches username and password", func(t *testing.T) {
		user, ok := roster.FindUser("informatica", "123456")
		require.True(t, ok)
		require.Equal(t, 20, user.ID)
		require.Equal(t, "Informática", user.DepartmentName)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		_, ok := roster.FindUser("informatica", "wrong")
		require.False(t, ok)
	})

	t.Run("rejects unknown username", func(t *testing.T) {
		_, ok := roster.FindUser("ghost", "123456")
		require.False(t, ok)
	})
}

func TestGetByID(t *testing.T) {
	roster := identity.NewDemoRoster()

	admin, ok := roster.GetByID(1)
	require.True(t, ok)
	require.Equal(t, domain.RoleAdmin, admin.Role)

	_, ok = roster.GetByID(0)
	require.False(t, ok)
}

func TestDepartments(t *testing.T) {
	roster := identity.NewDemoRoster()

	departments := roster.Departments()
	require.Len(t, departments, 25)
	// roster order, admin excluded
	require.Equal(t, domain.Department{ID: 2, Name: "Atención al ciudadano"}, departments[0])
	require.Equal(t, domain.Department{ID: 26, Name: "Entes Externos"}, departments[len(departments)-1])
}
