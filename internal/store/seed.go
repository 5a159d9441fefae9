package store

import (
	"time"

	"github.com/spec-kit/helpdesk/internal/domain"
)

// defaultSettings are used when no settings have been persisted yet.
func defaultSettings() domain.AppSettings {
	return domain.AppSettings{
		OrganizationName: "CDCE Anzoátegui",
		SystemName:       "Sistema de Gestión Integral",
	}
}

// seedTickets is the demo dataset loaded on first start: one ticket in
// each status.
func seedTickets() []domain.Ticket {
	now := time.Now().UTC()
	return []domain.Ticket{
		{
			ID:             1,
			UserID:         2,
			Title:          "Falla en impresora de red",
			Description:    "La impresora HP del piso 3 no responde a trabajos de impresión desde ninguna estación.",
			Priority:       domain.TicketPriorityHigh,
			Category:       domain.TicketCategoryHardware,
			Status:         domain.TicketStatusOpen,
			DepartmentName: "Atención al ciudadano",
			CreatedAt:      now.Add(-24 * time.Hour),
			UpdatedAt:      now.Add(-24 * time.Hour),
		},
		{
			ID:             2,
			UserID:         3,
			Title:          "Actualización de sistema operativo",
			Description:    "Solicitud de actualización de Windows en equipos del departamento.",
			Priority:       domain.TicketPriorityMedium,
			Category:       domain.TicketCategorySoftware,
			Status:         domain.TicketStatusInProgress,
			AdminResponse:  "Actualizaciones programadas para el viernes después de las 5pm.",
			DepartmentName: "Seguro social",
			CreatedAt:      now.Add(-48 * time.Hour),
			UpdatedAt:      now.Add(-12 * time.Hour),
		},
		{
			ID:             3,
			UserID:         4,
			Title:          "Sin conexión a internet",
			Description:    "Desde esta mañana no hay conexión a internet en todo el piso.",
			Priority:       domain.TicketPriorityCritical,
			Category:       domain.TicketCategoryNetwork,
			Status:         domain.TicketStatusResolved,
			AdminResponse:  "Se reinició el switch principal y se restableció la conexión.",
			DepartmentName: "Supervisión Educativa",
			CreatedAt:      now.Add(-72 * time.Hour),
			UpdatedAt:      now.Add(-48 * time.Hour),
		},
	}
}

// seedInventory is the demo asset list loaded on first start.
func seedInventory() []domain.InventoryItem {
	now := time.Now().UTC()
	return []domain.InventoryItem{
		{
			ID:           1,
			Name:         "Laptop Dell Latitude 5520",
			Type:         domain.InventoryTypeHardware,
			SerialNumber: "DL5520-001",
			Status:       domain.InventoryStatusActive,
			Stock:        15,
			Description:  "Portátiles para personal administrativo",
			CreatedAt:    now,
		},
		{
			ID:           2,
			Name:         "Monitor LG 24\"",
			Type:         domain.InventoryTypePeripheral,
			SerialNumber: "LG24-001",
			Status:       domain.InventoryStatusActive,
			Stock:        25,
			Description:  "Monitores de escritorio",
			CreatedAt:    now,
		},
		{
			ID:           3,
			Name:         "Microsoft Office 365",
			Type:         domain.InventoryTypeSoftware,
			SerialNumber: "MS365-LIC-001",
			Status:       domain.InventoryStatusActive,
			Stock:        50,
			Description:  "Licencias anuales",
			CreatedAt:    now,
		},
		{
			ID:           4,
			Name:         "Impresora HP LaserJet Pro",
			Type:         domain.InventoryTypeHardware,
			SerialNumber: "HP-LJ-003",
			Status:       domain.InventoryStatusMaintenance,
			Stock:        3,
			Description:  "Impresoras de red",
			CreatedAt:    now,
		},
	}
}
