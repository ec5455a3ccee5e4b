package routes

import (
	"crewmatch/internal/delivery/http/handler"
	"crewmatch/internal/delivery/http/middleware"
	v1 "crewmatch/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	v1     v1.Handlers
	auth   *middleware.AuthMiddleware
}

func NewRegistry(health *handler.HealthHandler, h v1.Handlers, auth *middleware.AuthMiddleware) *Registry {
	return &Registry{health: health, v1: h, auth: auth}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health != nil {
		r.health.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.v1, r.auth)
}
