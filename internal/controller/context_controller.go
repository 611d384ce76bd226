// FILE: internal/controller/context_controller.go
package controller

import (
	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/pkg/serverutils"
	"project-nexus-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContextController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type contextController struct {
	service service.ISessionService
}

func NewContextController(service service.ISessionService) IContextController {
	return &contextController{service: service}
}

func (c *contextController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/context", serverutils.JwtMiddleware)
	h.Get("/", c.Get)
	h.Patch("/", c.Update)
}

func (c *contextController) Get(ctx *fiber.Ctx) error {
	res := c.service.GetContext(ctx.Context(), serverutils.UserID(ctx))
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Context retrieved",
		"data":    res,
	})
}

func (c *contextController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateContextRequest
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

	res, err := c.service.UpdateContext(ctx.Context(), serverutils.UserID(ctx), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Context updated",
		"data":    res,
	})
}
