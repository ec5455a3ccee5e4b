package handler

import (
	"crewmatch/internal/delivery/http/dto"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/pkg/response"
	"crewmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	uc usecase.ReviewEligibilityUsecase
}

func NewReviewHandler(uc usecase.ReviewEligibilityUsecase) *ReviewHandler {
	return &ReviewHandler{uc: uc}
}

func (h *ReviewHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil || auth == nil {
		return
	}
	r.Get("/jobs/:jobID/reviews/eligibility/:userID", auth.Middleware(), h.GetEligibility)
}

// GetEligibility answers whether the caller may review userID for jobID. A
// denial is a normal 200 response carrying the reason.
func (h *ReviewHandler) GetEligibility(c fiber.Ctx) error {
	actorID, err := requireUser(c)
	if err != nil {
		return err
	}

	var p dto.EligibilityParams
	if err := c.Bind().URI(&p); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid path", nil, err)
	}
	if err := validate(p); err != nil {
		return err
	}

	d, err := h.uc.CanReview(c.Context(), actorID, uuid.MustParse(p.UserID), uuid.MustParse(p.JobID))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewEligibilityResponse(d))
}
