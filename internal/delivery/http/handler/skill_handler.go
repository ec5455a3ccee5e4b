package handler

import (
	"crewmatch/internal/delivery/http/dto"
	"crewmatch/internal/delivery/http/middleware"
	"crewmatch/internal/pkg/response"
	"crewmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillInferenceUsecase
}

func NewSkillHandler(uc usecase.SkillInferenceUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router, auth *middleware.AuthMiddleware) {
	if r == nil || auth == nil {
		return
	}
	r.Post("/users/me/skills/detect", auth.Middleware(), h.DetectMySkills)
}

func (h *SkillHandler) DetectMySkills(c fiber.Ctx) error {
	userID, err := requireUser(c)
	if err != nil {
		return err
	}

	res, err := h.uc.InferSkills(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}

	detected := res.Detected
	if detected == nil {
		detected = []string{}
	}
	return response.OK(c, dto.SkillDetectionResponse{
		Detected: detected,
		Added:    dto.NewSkillResponses(res.Added),
		Skills:   dto.NewSkillResponses(res.Skills),
	})
}
