package controller

import (
	"strconv"

	"ai-shopping-be/internal/dto"
	"ai-shopping-be/internal/pkg/serverutils"
	"ai-shopping-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type productController struct {
	service service.IProductService
}

func NewProductController(service service.IProductService) IProductController {
	return &productController{service: service}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/product/v1")
	h.Get("", c.List)
	h.Get(":code", c.Show)
}

func (c *productController) List(ctx *fiber.Ctx) error {
	req := dto.ListProductsRequest{
		Search:      ctx.Query("search"),
		Brand:       ctx.Query("brand"),
		Sort:        ctx.Query("sort"),
		InStockOnly: ctx.QueryBool("in_stock_only"),
		Page:        ctx.QueryInt("page", 1),
		PageSize:    ctx.QueryInt("page_size", 20),
	}

	if categoryStr := ctx.Query("category_id"); categoryStr != "" {
		categoryId, err := uuid.Parse(categoryStr)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid category_id")
		}
		req.CategoryId = &categoryId
	}
	if minStr := ctx.Query("min_price"); minStr != "" {
		min, err := strconv.Atoi(minStr)
		if err != nil || min < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid min_price")
		}
		req.MinPrice = &min
	}
	if maxStr := ctx.Query("max_price"); maxStr != "" {
		max, err := strconv.Atoi(maxStr)
		if err != nil || max < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid max_price")
		}
		req.MaxPrice = &max
	}

	res, err := c.service.List(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list products", res))
}

func (c *productController) Show(ctx *fiber.Ctx) error {
	res, err := c.service.Show(ctx.Context(), ctx.Params("code"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}
