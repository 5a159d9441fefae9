package dto

import "github.com/spec-kit/helpdesk/internal/domain"

// CreateInventoryItemRequest payload.
type CreateInventoryItemRequest struct {
	Name         string                 `json:"name" validate:"required"`
	Type         domain.InventoryType   `json:"type" validate:"required,oneof=Hardware Software Peripheral"`
	SerialNumber string                 `json:"serial_number" validate:"required"`
	Status       domain.InventoryStatus `json:"status" validate:"required,oneof=Active Maintenance Decommissioned"`
	Stock        int                    `json:"stock" validate:"gte=0"`
	Description  string                 `json:"description,omitempty"`
}
