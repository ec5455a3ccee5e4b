package handler

import (
	"crewmatch/internal/delivery/http/dto"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/pkg/response"
	"crewmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ReputationHandler struct {
	uc usecase.ReputationUsecase
}

func NewReputationHandler(uc usecase.ReputationUsecase) *ReputationHandler {
	return &ReputationHandler{uc: uc}
}

func (h *ReputationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/users/:id/reputation", h.GetReputation)
}

func (h *ReputationHandler) GetReputation(c fiber.Ctx) error {
	var p dto.UserIDParam
	if err := c.Bind().URI(&p); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid path", nil, err)
	}
	if err := validate(p); err != nil {
		return err
	}

	summary, err := h.uc.Summary(c.Context(), uuid.MustParse(p.ID))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.NewReputationResponse(summary))
}
