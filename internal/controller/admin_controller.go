// FILE: internal/controller/admin_controller.go
package controller

import (
	"project-nexus-be/internal/pkg/logger"
	"project-nexus-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	Logs(ctx *fiber.Ctx) error
	LogById(ctx *fiber.Ctx) error
}

// adminController exposes operational peeks for the demo's admin login.
type adminController struct {
	log logger.ILogger
}

func NewAdminController(log logger.ILogger) IAdminController {
	return &adminController{log: log}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin", serverutils.JwtMiddleware, serverutils.AdminOnly)
	h.Get("/logs", c.Logs)
	h.Get("/logs/:id", c.LogById)
}

func (c *adminController) Logs(ctx *fiber.Ctx) error {
	level := ctx.Query("level", "")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	entries, err := c.log.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Logs retrieved",
		"data":    entries,
	})
}

func (c *adminController) LogById(ctx *fiber.Ctx) error {
	entry, err := c.log.GetLogById(ctx.Params("id"))
	if err != nil {
		return err
	}
	if entry == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"code":    404,
			"message": "Log entry not found",
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Log entry retrieved",
		"data":    entry,
	})
}
