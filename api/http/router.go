package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/celera/directory/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, members *handlers.MembersHandler, insights *handlers.InsightsHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	m := v1.Group("/members")
	m.Get("/", members.List)
	m.Post("/", members.Create)
	m.Get("/eligible", members.Eligible)
	m.Get("/:name/matches", members.Matches)

	v1.Get("/insights", insights.Get)
}
