package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sla-engine/internal/api/http/handlers"
	"github.com/spec-kit/sla-engine/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	SLA            *handlers.SLAHandler
	Calendar       *handlers.CalendarHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/login", cfg.Auth.Login)

	api := app.Group("", cfg.AuthMiddleware.Handle)

	tickets := api.Group("/tickets")
	tickets.Post("", cfg.Tickets.CreateTicket)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Get("/:id/history", cfg.Tickets.ListHistory)
	tickets.Get("/:id/sla", cfg.SLA.TicketSLA)
	tickets.Post("/:id/assign", cfg.Tickets.AssignTicket)
	tickets.Patch("/:id/status", cfg.Tickets.UpdateStatus)
	tickets.Patch("/:id/priority", auth.RequireRole(auth.RoleAdmin), cfg.Tickets.UpdatePriority)

	slaGroup := api.Group("/sla")
	slaGroup.Get("/policies", cfg.SLA.ListPolicies)
	slaGroup.Get("/policies/:priority", cfg.SLA.GetPolicy)
	slaGroup.Get("/metrics", auth.RequireRole(auth.RoleAdmin), cfg.SLA.Metrics)

	calendarGroup := api.Group("/calendar")
	calendarGroup.Get("/holidays", cfg.Calendar.ListHolidays)
	calendarGroup.Post("/holidays", auth.RequireRole(auth.RoleAdmin), cfg.Calendar.AddHoliday)
}
