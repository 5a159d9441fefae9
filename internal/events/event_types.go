package events

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated      EventType = "ticket_created"
	EventTicketUpdated      EventType = "ticket_updated"
	EventInventoryItemAdded EventType = "inventory_item_added"
	EventSettingsUpdated    EventType = "settings_updated"
)

// Event represents a domain event emitted by the store.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	TicketID       int                   `json:"ticket_id"`
	UserID         int                   `json:"user_id"`
	DepartmentName string                `json:"department_name,omitempty"`
	Priority       domain.TicketPriority `json:"priority"`
	Title          string                `json:"title"`
}

// TicketUpdatedPayload payload.
type TicketUpdatedPayload struct {
	TicketID    int                 `json:"ticket_id"`
	OldStatus   domain.TicketStatus `json:"old_status"`
	NewStatus   domain.TicketStatus `json:"new_status"`
	HasResponse bool                `json:"has_response"`
}

// InventoryItemAddedPayload payload.
type InventoryItemAddedPayload struct {
	ItemID       int                  `json:"item_id"`
	Name         string               `json:"name"`
	Type         domain.InventoryType `json:"type"`
	SerialNumber string               `json:"serial_number"`
	Stock        int                  `json:"stock"`
}

// SettingsUpdatedPayload payload.
type SettingsUpdatedPayload struct {
	OrganizationName string `json:"organization_name"`
	SystemName       string `json:"system_name"`
	LogoChanged      bool   `json:"logo_changed"`
}
