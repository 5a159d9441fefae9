package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/store"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

// InventoryHandler manages asset inventory endpoints. Items can only
// be listed and created; update and delete are deliberately absent.
type InventoryHandler struct {
	store *store.Store
}

// NewInventoryHandler constructs handler.
func NewInventoryHandler(domainStore *store.Store) *InventoryHandler {
	return &InventoryHandler{store: domainStore}
}

// List GET /inventory.
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Inventory()})
}

// Create POST /inventory.
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return apperrors.NewValidationError("name, type, serial_number and status required; stock must be >= 0", nil)
	}

	item := h.store.AddInventoryItem(c.UserContext(), store.InventoryItemInput{
		Name:         req.Name,
		Type:         req.Type,
		SerialNumber: req.SerialNumber,
		Status:       req.Status,
		Stock:        req.Stock,
		Description:  req.Description,
	})
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": item})
}
