package controller

import (
	"ai-shopping-be/internal/dto"
	"ai-shopping-be/internal/pkg/serverutils"
	"ai-shopping-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const historyLimit = 20

type IResearchController interface {
	RegisterRoutes(r fiber.Router)
	GenerateQuestions(ctx *fiber.Ctx) error
	GetRecommendations(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
}

type researchController struct {
	service        service.IResearchService
	historyService service.ISearchHistoryService
}

func NewResearchController(researchService service.IResearchService, historyService service.ISearchHistoryService) IResearchController {
	return &researchController{
		service:        researchService,
		historyService: historyService,
	}
}

func (c *researchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Post("/research/questions", c.GenerateQuestions)
	h.Post("/research/recommendations", serverutils.OptionalJwtMiddleware, c.GetRecommendations)
	h.Get("/history", serverutils.JwtMiddleware, c.GetHistory) // ✅ PROTECTED
}

func (c *researchController) GenerateQuestions(ctx *fiber.Ctx) error {
	var req dto.GenerateQuestionsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GenerateQuestions(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate questions", res))
}

func (c *researchController) GetRecommendations(ctx *fiber.Ctx) error {
	var req dto.GetRecommendationsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// Anonymous requests are allowed; user id only attributes history
	var userId *uuid.UUID
	if userIdStr, ok := ctx.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(userIdStr); err == nil {
			userId = &id
		}
	}

	res, err := c.service.GetRecommendations(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get recommendations", res))
}

func (c *researchController) GetHistory(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid user id in token")
	}

	res, err := c.historyService.GetHistory(ctx.Context(), userId, historyLimit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get search history", res))
}
