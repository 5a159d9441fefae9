package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 60)
	user := &domain.User{
		ID:             7,
		Username:       "planificacion",
		Role:           domain.RoleDepartment,
		DepartmentName: "Planificación y Presupuesto",
	}

	token, expiresAt, err := tm.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, expiresAt.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)

	rebuilt := claims.User()
	require.Equal(t, user.ID, rebuilt.ID)
	require.Equal(t, user.Username, rebuilt.Username)
	require.Equal(t, user.Role, rebuilt.Role)
	require.Equal(t, user.DepartmentName, rebuilt.DepartmentName)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenManager("secret-a", 60)
	verifier := auth.NewTokenManager("secret-b", 60)

	token, _, err := issuer.GenerateToken(&domain.User{ID: 1, Username: "admin", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", 60)
	_, err := tm.ParseToken("not.a.token")
	require.Error(t, err)
}
