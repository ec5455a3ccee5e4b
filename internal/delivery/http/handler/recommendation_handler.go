package handler

import (
	"crewmatch/internal/delivery/http/dto"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/pkg/response"
	"crewmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil || auth == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/recommendations", auth.Middleware(), h.GetRecommendations)
	grp.Get("/featured", auth.Optional(), h.GetFeatured)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	var q dto.RecommendationQuery
	if err := c.Bind().Query(&q); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid query", nil, err)
	}
	if err := validate(q); err != nil {
		return err
	}

	jobs, err := h.uc.Recommend(c.Context(), userID, usecase.RecommendationParams{Limit: q.Limit})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewJobResponses(jobs))
}

func (h *RecommendationHandler) GetFeatured(c fiber.Ctx) error {
	var feed usecase.HomeFeed
	var err error
	if userID, ok := middleware.UserID(c); ok {
		feed, err = h.uc.Home(c.Context(), &userID)
	} else {
		feed, err = h.uc.Home(c.Context(), nil)
	}
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.OK(c, dto.HomeFeedResponse{
		Jobs:          dto.NewJobResponses(feed.Jobs),
		Personalized:  feed.Personalized,
		UrgentCount:   feed.UrgentCount,
		ThisWeekCount: feed.ThisWeekCount,
	})
}
