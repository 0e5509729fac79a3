package http

import (
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/resumeflow/api/http/handlers"
	"github.com/artem13815/resumeflow/api/http/web"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, resume *handlers.ResumeHandler, linkedin *handlers.LinkedInHandler) {
	app.Get("/", web.Index)

	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	app.Post("/upload", resume.Upload)
	app.Get("/user/:id", resume.Get)

	app.Get("/auth/linkedin", linkedin.Auth)
	app.Get("/auth/linkedin/callback", linkedin.Callback)
	app.Post("/linkedin-scrape", linkedin.Scrape)

	app.Get("/swagger/*", swagger.HandlerDefault)
}
