package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/store"
)

// DashboardHandler serves the admin dashboard aggregates.
type DashboardHandler struct {
	store *store.Store
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(domainStore *store.Store) *DashboardHandler {
	return &DashboardHandler{store: domainStore}
}

// Stats GET /dashboard/stats. Pure aggregation over the current ticket
// collection.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Stats()})
}
