package app

import (
	"fmt"
	"strings"

	"crewmatch/internal/config"
	"crewmatch/internal/delivery/http/handler"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/delivery/http/routes"
	v1 "crewmatch/internal/delivery/http/routes/v1"
	"crewmatch/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New builds the fiber app on top of an already wired container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}
	if err := cfg.RequireServer(); err != nil {
		return nil, nil, err
	}
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	app.Use(middleware.NewAccessLogMiddleware(c.Logger.Named("http")).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger.Named("http")).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	jwtSvc := jwt.NewHMACService(c.Config.JWT.AccessSecret, c.Config.JWT.AccessExpiresIn)
	auth := middleware.NewAuthMiddleware(jwtSvc)

	var cachePinger handler.Pinger
	if c.Cache != nil && c.Cache.Available() {
		cachePinger = c.Cache
	}

	routes.NewRegistry(
		handler.NewHealthHandler(c.DB, cachePinger),
		v1.Handlers{
			Recommendation: handler.NewRecommendationHandler(c.Recommendation),
			Skill:          handler.NewSkillHandler(c.SkillInference),
			Reputation:     handler.NewReputationHandler(c.Reputation),
			Review:         handler.NewReviewHandler(c.ReviewEligibility),
		},
		auth,
	).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
