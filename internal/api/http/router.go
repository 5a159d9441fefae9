package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk/internal/auth"
	"github.com/spec-kit/helpdesk/internal/authz"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Inventory      *handlers.InventoryHandler
	Settings       *handlers.SettingsHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	app.Post("/auth/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle)
	protected.Post("/auth/logout", cfg.Auth.Logout)
	protected.Get("/auth/session", cfg.Auth.Session)

	protected.Get("/tickets", cfg.Tickets.List)
	protected.Post("/tickets", cfg.Tickets.Create)
	protected.Patch("/tickets/:id", auth.RequireCapability(authz.CapRespondTickets), cfg.Tickets.Update)
	protected.Get("/departments", auth.RequireCapability(authz.CapCreateTicketForDept), cfg.Tickets.Departments)

	protected.Get("/inventory", auth.RequireCapability(authz.CapManageInventory), cfg.Inventory.List)
	protected.Post("/inventory", auth.RequireCapability(authz.CapManageInventory), cfg.Inventory.Create)

	protected.Get("/settings", cfg.Settings.Get)
	protected.Put("/settings", auth.RequireCapability(authz.CapManageSettings), cfg.Settings.Update)

	protected.Get("/dashboard/stats", auth.RequireCapability(authz.CapViewDashboard), cfg.Dashboard.Stats)
}
