package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/formforge/backend/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app.
func Register(app *fiber.App, prompt *handlers.PromptHandler, users *handlers.UserHandler, health *handlers.HealthHandler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Form-schema generation
	v1.Post("/prompt", prompt.Generate)

	// User records
	v1.Get("/users", users.List)
	v1.Post("/user", users.Create)
}
