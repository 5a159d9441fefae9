package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/session"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

// AuthHandler exposes login, logout and session restore.
type AuthHandler struct {
	sessions *session.Manager
	tokens   *auth.TokenManager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(sessions *session.Manager, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{sessions: sessions, tokens: tokens}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return apperrors.NewValidationError("username and password required", nil)
	}

	user, ok := h.sessions.Login(c.UserContext(), req.Username, req.Password)
	if !ok {
		// bad credentials are a rejected attempt, not a server error
		return apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := h.tokens.GenerateToken(user)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewSessionResponse(user, token, &expiresAt)})
}

// Logout POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Logout(c.UserContext())
	return c.SendStatus(http.StatusNoContent)
}

// Session GET /auth/session. Rebuilds the caller from the bearer token
// claims; no roster re-validation happens here.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return c.JSON(fiber.Map{"data": dto.NewSessionResponse(user, "", nil)})
}
