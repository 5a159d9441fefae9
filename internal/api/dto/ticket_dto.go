package dto

import "github.com/spec-kit/helpdesk/internal/domain"

// CreateTicketRequest payload. DepartmentID is honored only for admin
// callers creating on behalf of a department; department callers are
// always attributed to themselves.
type CreateTicketRequest struct {
	Title        string                `json:"title" validate:"required"`
	Description  string                `json:"description" validate:"required"`
	Priority     domain.TicketPriority `json:"priority" validate:"required,oneof=Low Medium High Critical"`
	Category     domain.TicketCategory `json:"category" validate:"required,oneof=Network Software Hardware"`
	DepartmentID *int                  `json:"department_id,omitempty"`
}

// UpdateTicketRequest carries the admin-side partial update. Omitted
// fields stay untouched.
type UpdateTicketRequest struct {
	Status        *domain.TicketStatus `json:"status,omitempty" validate:"omitempty,oneof=Open InProgress Resolved"`
	AdminResponse *string              `json:"admin_response,omitempty"`
}
