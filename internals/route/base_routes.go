package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"disciplehub_backend/internals/configs"
)

// BaseRoutes mounts the root and liveness endpoints.
func BaseRoutes(app *fiber.App, cfg configs.Config) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("DiscipleHub API")
	})

	// Liveness only: always 200, no dependency checks. Store outages
	// surface on the real endpoints, not here.
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   cfg.AppVersion,
		})
	})
}
