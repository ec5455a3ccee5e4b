package v1

import (
	"crewmatch/internal/delivery/http/handler"
	"crewmatch/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Recommendation *handler.RecommendationHandler
	Skill          *handler.SkillHandler
	Reputation     *handler.ReputationHandler
	Review         *handler.ReviewHandler
}

func Register(r fiber.Router, h Handlers, auth *middleware.AuthMiddleware) {
	if r == nil {
		return
	}

	if h.Recommendation != nil {
		h.Recommendation.RegisterRoutes(r, auth)
	}
	if h.Review != nil {
		h.Review.RegisterRoutes(r, auth)
	}
	if h.Skill != nil {
		h.Skill.RegisterRoutes(r, auth)
	}
	if h.Reputation != nil {
		h.Reputation.RegisterRoutes(r)
	}
}
