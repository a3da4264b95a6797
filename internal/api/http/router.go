package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shift-service/internal/api/http/handlers"
	"github.com/spec-kit/shift-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Shifts         *handlers.ShiftsHandler
	Imports        *handlers.ImportsHandler
	Notifications  *handlers.NotificationsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/password/reset/request", cfg.Auth.RequestPasswordReset)
	authGroup.Post("/password/reset/confirm", cfg.Auth.ConfirmPasswordReset)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, cfg.Auth.ChangePassword)

	api := app.Group("/api/v1", cfg.AuthMiddleware.Handle, auth.RequireRole())

	api.Get("/shifts/me", cfg.Shifts.ListMine)
	api.Get("/shifts", auth.RequireScheduleManager(), cfg.Shifts.List)
	api.Post("/shifts", auth.RequireScheduleManager(), cfg.Shifts.Create)
	api.Delete("/shifts/:id", auth.RequireScheduleManager(), cfg.Shifts.Delete)

	imports := api.Group("/imports", auth.RequireScheduleManager())
	imports.Post("/", cfg.Imports.Direct)
	imports.Post("/preview", cfg.Imports.Preview)
	imports.Post("/:id/commit", cfg.Imports.Commit)

	api.Get("/notifications", cfg.Notifications.List)
	api.Post("/notifications/:id/read", cfg.Notifications.MarkRead)
}
