package session

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/identity"
	"github.com/spec-kit/helpdesk/internal/storage"
)

// Manager holds the active session: Anonymous (no user) or
// Authenticated. The authenticated user is persisted to storage so it
// survives restarts.
type Manager struct {
	roster *identity.Roster
	kv     storage.KV
	logger *zap.Logger

	mu      sync.RWMutex
	current *domain.User
}

// NewManager builds a manager in the Anonymous state.
func NewManager(roster *identity.Roster, kv storage.KV, logger *zap.Logger) *Manager {
	return &Manager{roster: roster, kv: kv, logger: logger}
}

// Login authenticates against the roster. On a match the session
// becomes Authenticated and the user (without password) is persisted;
// on a miss the session is unchanged. Every call is independent: no
// lockout or attempt tracking.
func (m *Manager) Login(ctx context.Context, username, password string) (*domain.User, bool) {
	user, ok := m.roster.FindUser(username, password)
	if !ok {
		return nil, false
	}

	m.mu.Lock()
	m.current = user
	m.mu.Unlock()

	payload, err := json.Marshal(user)
	if err == nil {
		err = m.kv.Set(ctx, storage.KeySession, payload)
	}
	if err != nil {
		m.logger.Warn("failed to persist session", zap.Error(err))
	}

	session := *user
	return &session, true
}

// Logout unconditionally returns to Anonymous and clears storage.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	if err := m.kv.Delete(ctx, storage.KeySession); err != nil {
		m.logger.Warn("failed to clear persisted session", zap.Error(err))
	}
}

// Restore loads a persisted session at startup. The stored record is
// trusted as-is and not re-validated against the roster. Missing or
// corrupt storage means Anonymous, never an error.
func (m *Manager) Restore(ctx context.Context) *domain.User {
	payload, err := m.kv.Get(ctx, storage.KeySession)
	if err != nil {
		if err != storage.ErrKeyNotFound {
			m.logger.Warn("failed to read persisted session", zap.Error(err))
		}
		return nil
	}

	var user domain.User
	if err := json.Unmarshal(payload, &user); err != nil {
		m.logger.Warn("discarding corrupt persisted session", zap.Error(err))
		return nil
	}

	m.mu.Lock()
	m.current = &user
	m.mu.Unlock()

	session := user
	return &session
}

// Current returns the authenticated user, or nil when Anonymous.
func (m *Manager) Current() *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	user := *m.current
	return &user
}
