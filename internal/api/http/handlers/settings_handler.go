package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/store"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

// SettingsHandler manages the application settings singleton.
type SettingsHandler struct {
	store *store.Store
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(domainStore *store.Store) *SettingsHandler {
	return &SettingsHandler{store: domainStore}
}

// Get GET /settings. Readable by any authenticated user; the header of
// every view renders the organization and system names.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Settings()})
}

// Update PUT /settings. Admin-only wholesale merge.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	settings := h.store.UpdateSettings(c.UserContext(), store.SettingsUpdate{
		Logo:             req.Logo,
		OrganizationName: req.OrganizationName,
		SystemName:       req.SystemName,
	})
	return c.JSON(fiber.Map{"data": settings})
}
