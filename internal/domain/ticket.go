package domain

import "time"

// TicketStatus enumerates ticket lifecycle states. Transitions are
// unrestricted: any status may follow any other.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "InProgress"
	TicketStatusResolved   TicketStatus = "Resolved"
)

// TicketPriority enumerates reported urgency.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "Low"
	TicketPriorityMedium   TicketPriority = "Medium"
	TicketPriorityHigh     TicketPriority = "High"
	TicketPriorityCritical TicketPriority = "Critical"
)

// TicketCategory enumerates the kind of issue reported.
type TicketCategory string

const (
	TicketCategoryNetwork  TicketCategory = "Network"
	TicketCategorySoftware TicketCategory = "Software"
	TicketCategoryHardware TicketCategory = "Hardware"
)

// Ticket is a support request. AdminResponse is set only through an
// update, never at creation; DepartmentName is a denormalized label.
type Ticket struct {
	ID             int            `json:"id"`
	UserID         int            `json:"user_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Priority       TicketPriority `json:"priority"`
	Category       TicketCategory `json:"category"`
	Status         TicketStatus   `json:"status"`
	AdminResponse  string         `json:"admin_response,omitempty"`
	DepartmentName string         `json:"department_name,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
