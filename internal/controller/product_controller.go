// FILE: internal/controller/product_controller.go
package controller

import (
	"errors"

	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/pkg/serverutils"
	"project-nexus-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type productController struct {
	service service.IProductService
}

func NewProductController(service service.IProductService) IProductController {
	return &productController{service: service}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/products", serverutils.JwtMiddleware)
	h.Get("/", c.List)
	h.Get("/categories", c.Categories)
	h.Get("/:id", c.Get)
	h.Post("/", serverutils.AdminOnly, c.Create)
}

func (c *productController) List(ctx *fiber.Ctx) error {
	var query dto.ListProductsQuery
	if err := ctx.QueryParser(&query); err != nil {
		return err
	}

	res, err := c.service.List(ctx.Context(), &query)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Products retrieved",
		"data":    res,
	})
}

func (c *productController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "Invalid product id",
		})
	}

	res, err := c.service.Get(ctx.Context(), serverutils.UserID(ctx), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"code":    404,
				"message": err.Error(),
			})
		}
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Product retrieved",
		"data":    res,
	})
}

func (c *productController) Categories(ctx *fiber.Ctx) error {
	res, err := c.service.Categories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Categories retrieved",
		"data":    res,
	})
}

func (c *productController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Product created",
		"data":    res,
	})
}
