package controller

import (
	"ai-shopping-be/internal/pkg/serverutils"
	"ai-shopping-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICategoryController interface {
	RegisterRoutes(r fiber.Router)
	GetTree(ctx *fiber.Ctx) error
	GetRoots(ctx *fiber.Ctx) error
	GetChildren(ctx *fiber.Ctx) error
}

type categoryController struct {
	service service.ICategoryService
}

func NewCategoryController(service service.ICategoryService) ICategoryController {
	return &categoryController{service: service}
}

func (c *categoryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/category/v1")
	h.Get("/tree", c.GetTree)
	h.Get("/roots", c.GetRoots)
	h.Get(":id/children", c.GetChildren)
}

func (c *categoryController) GetTree(ctx *fiber.Ctx) error {
	res, err := c.service.GetTree(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get category tree", res))
}

func (c *categoryController) GetRoots(ctx *fiber.Ctx) error {
	res, err := c.service.GetRoots(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get root categories", res))
}

func (c *categoryController) GetChildren(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category id")
	}

	res, err := c.service.GetChildren(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get category children", res))
}
