package dto

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/authz"
	"github.com/spec-kit/helpdesk/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse describes the authenticated session.
type SessionResponse struct {
	User         domain.User        `json:"user"`
	Token        string             `json:"token,omitempty"`
	ExpiresAt    *time.Time         `json:"expires_at,omitempty"`
	DefaultView  authz.View         `json:"default_view"`
	Views        []authz.View       `json:"views"`
	Capabilities []authz.Capability `json:"capabilities"`
}

// NewSessionResponse assembles the session envelope for a user.
func NewSessionResponse(user *domain.User, token string, expiresAt *time.Time) SessionResponse {
	return SessionResponse{
		User:         *user,
		Token:        token,
		ExpiresAt:    expiresAt,
		DefaultView:  authz.DefaultView(user.Role),
		Views:        authz.ViewsFor(user.Role),
		Capabilities: authz.CapabilitiesFor(user.Role),
	}
}
