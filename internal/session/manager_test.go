package session_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/identity"
	"github.com/spec-kit/helpdesk/internal/session"
	"github.com/spec-kit/helpdesk/internal/storage"
)

func newManager() (*session.Manager, *storage.Memory) {
	kv := storage.NewMemory()
	return session.NewManager(identity.NewDemoRoster(), kv, zap.NewNop()), kv
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("correct credentials authenticate", func(t *testing.T) {
		m, kv := newManager()
		user, ok := m.Login(ctx, "atencion", "123456")
		require.True(t, ok)
		require.Equal(t, 2, user.ID)
		require.Equal(t, domain.RoleDepartment, user.Role)
		require.Equal(t, "Atención al ciudadano", user.DepartmentName)
		require.Equal(t, user, m.Current())

		// persisted record carries no password field
		payload, err := kv.Get(ctx, storage.KeySession)
		require.NoError(t, err)
		var stored map[string]any
		require.NoError(t, json.Unmarshal(payload, &stored))
		require.NotContains(t, stored, "password")
	})

	t.Run("wrong password stays anonymous", func(t *testing.T) {
		m, kv := newManager()
		user, ok := m.Login(ctx, "atencion", "654321")
		require.False(t, ok)
		require.Nil(t, user)
		require.Nil(t, m.Current())

		_, err := kv.Get(ctx, storage.KeySession)
		require.ErrorIs(t, err, storage.ErrKeyNotFound)
	})

	t.Run("unknown username stays anonymous", func(t *testing.T) {
		m, _ := newManager()
		_, ok := m.Login(ctx, "nadie", "123456")
		require.False(t, ok)
		require.Nil(t, m.Current())
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	m, kv := newManager()

	_, ok := m.Login(ctx, "admin", "123456")
	require.True(t, ok)

	m.Logout(ctx)
	require.Nil(t, m.Current())
	_, err := kv.Get(ctx, storage.KeySession)
	require.ErrorIs(t, err, storage.ErrKeyNotFound)

	// logging out while anonymous is harmless
	m.Logout(ctx)
	require.Nil(t, m.Current())
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("no prior login yields anonymous", func(t *testing.T) {
		m, _ := newManager()
		require.Nil(t, m.Restore(ctx))
		require.Nil(t, m.Current())
	})

	t.Run("restores a persisted session without re-validating", func(t *testing.T) {
		first, kv := newManager()
		logged, ok := first.Login(ctx, "supervision", "123456")
		require.True(t, ok)

		second := session.NewManager(identity.NewDemoRoster(), kv, zap.NewNop())
		restored := second.Restore(ctx)
		require.NotNil(t, restored)
		require.Equal(t, logged, restored)
		require.Equal(t, restored, second.Current())
	})

	t.Run("stored record is trusted as-is", func(t *testing.T) {
		kv := storage.NewMemory()
		forged := domain.User{ID: 999, Username: "fantasma", Role: domain.RoleAdmin}
		payload, err := json.Marshal(forged)
		require.NoError(t, err)
		require.NoError(t, kv.Set(ctx, storage.KeySession, payload))

		m := session.NewManager(identity.NewDemoRoster(), kv, zap.NewNop())
		restored := m.Restore(ctx)
		require.NotNil(t, restored)
		require.Equal(t, forged, *restored)
	})

	t.Run("corrupt storage degrades to anonymous", func(t *testing.T) {
		kv := storage.NewMemory()
		require.NoError(t, kv.Set(ctx, storage.KeySession, []byte("{broken")))

		m := session.NewManager(identity.NewDemoRoster(), kv, zap.NewNop())
		require.Nil(t, m.Restore(ctx))
		require.Nil(t, m.Current())
	})

	t.Run("logout then restore yields anonymous", func(t *testing.T) {
		m, _ := newManager()
		_, ok := m.Login(ctx, "admin", "123456")
		require.True(t, ok)
		m.Logout(ctx)
		require.Nil(t, m.Restore(ctx))
	})
}
