package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/authz"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

// RequireCapability gates a route on the authorization gate's verdict
// for the caller's role.
func RequireCapability(capability authz.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !authz.Can(user.Role, capability) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
