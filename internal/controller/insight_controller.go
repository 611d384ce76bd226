// FILE: internal/controller/insight_controller.go
package controller

import (
	"project-nexus-be/internal/pkg/serverutils"
	"project-nexus-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInsightController interface {
	RegisterRoutes(r fiber.Router)
	Aura(ctx *fiber.Ctx) error
	Predictions(ctx *fiber.Ctx) error
	Sustainability(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
}

type insightController struct {
	service service.IInsightService
}

func NewInsightController(service service.IInsightService) IInsightController {
	return &insightController{service: service}
}

func (c *insightController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insights", serverutils.JwtMiddleware)
	h.Get("/aura", c.Aura)
	h.Get("/predictions", c.Predictions)
	h.Get("/sustainability", c.Sustainability)
	h.Get("/dashboard", c.Dashboard)
}

func (c *insightController) Aura(ctx *fiber.Ctx) error {
	res, err := c.service.Aura(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Aura computed",
		"data":    res,
	})
}

func (c *insightController) Predictions(ctx *fiber.Ctx) error {
	res, err := c.service.Predictions(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Predictions generated",
		"data":    res,
	})
}

func (c *insightController) Sustainability(ctx *fiber.Ctx) error {
	res, err := c.service.Sustainability(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Sustainability report ready",
		"data":    res,
	})
}

func (c *insightController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.service.Dashboard(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Dashboard ready",
		"data":    res,
	})
}
