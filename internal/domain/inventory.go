package domain

import "time"

// InventoryType classifies an inventory item.
type InventoryType string

const (
	InventoryTypeHardware   InventoryType = "Hardware"
	InventoryTypeSoftware   InventoryType = "Software"
	InventoryTypePeripheral InventoryType = "Peripheral"
)

// InventoryStatus enumerates the operational state of an item.
type InventoryStatus string

const (
	InventoryStatusActive         InventoryStatus = "Active"
	InventoryStatusMaintenance    InventoryStatus = "Maintenance"
	InventoryStatusDecommissioned InventoryStatus = "Decommissioned"
)

// InventoryItem is a tracked technology asset. Items are created by
// admins and never updated or deleted. Serial numbers are not unique.
type InventoryItem struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Type         InventoryType   `json:"type"`
	SerialNumber string          `json:"serial_number"`
	Status       InventoryStatus `json:"status"`
	Stock        int             `json:"stock"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
