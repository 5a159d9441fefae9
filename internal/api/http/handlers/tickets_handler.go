package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/dto"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/authz"
	"github.com/spec-kit/helpdesk/internal/domain"
	"github.com/spec-kit/helpdesk/internal/store"
	apperrors "github.com/spec-kit/helpdesk/pkg/util/errorutil"
)

// TicketsHandler manages ticket endpoints for both roles.
type TicketsHandler struct {
	store *store.Store
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(domainStore *store.Store) *TicketsHandler {
	return &TicketsHandler{store: domainStore}
}

// List GET /tickets. Admins see the full collection; department users
// only their own.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var tickets []domain.Ticket
	if authz.Can(user.Role, authz.CapViewAllTickets) {
		tickets = h.store.Tickets()
	} else {
		tickets = h.store.TicketsForUser(user.ID)
	}
	return c.JSON(fiber.Map{"data": tickets})
}

// Create POST /tickets. Department users are always attributed to
// themselves; admins create on behalf of a chosen department.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return apperrors.NewValidationError("title, description, priority and category required", nil)
	}

	input := store.TicketInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
		Status:      domain.TicketStatusOpen,
	}

	switch {
	case authz.Can(user.Role, authz.CapCreateTicketForDept):
		if req.DepartmentID == nil {
			return apperrors.NewValidationError("department_id required", nil)
		}
		dept, ok := findDepartment(h.store.Departments(), *req.DepartmentID)
		if !ok {
			return apperrors.NewNotFound("department", map[string]any{"department_id": *req.DepartmentID})
		}
		input.UserID = dept.ID
		input.DepartmentName = dept.Name
	case authz.Can(user.Role, authz.CapCreateOwnTicket):
		input.UserID = user.ID
		input.DepartmentName = user.DepartmentName
	default:
		return apperrors.NewForbidden("insufficient role")
	}

	ticket := h.store.AddTicket(c.UserContext(), input)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": ticket})
}

// Update PATCH /tickets/:id. Admin-only; a stale id is tolerated and
// reported as a null result rather than an error.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("invalid ticket id", nil)
	}
	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return apperrors.NewValidationError("invalid status value", nil)
	}

	ticket, found := h.store.UpdateTicket(c.UserContext(), id, store.TicketUpdate{
		Status:        req.Status,
		AdminResponse: req.AdminResponse,
	})
	if !found {
		return c.JSON(fiber.Map{"data": nil})
	}
	return c.JSON(fiber.Map{"data": ticket})
}

// Departments GET /departments. Backs the admin on-behalf-of picker.
func (h *TicketsHandler) Departments(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.store.Departments()})
}

func findDepartment(departments []domain.Department, id int) (domain.Department, bool) {
	for _, dept := range departments {
		if dept.ID == id {
			return dept, true
		}
	}
	return domain.Department{}, false
}
