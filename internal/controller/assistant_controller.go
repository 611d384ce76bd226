// FILE: internal/controller/assistant_controller.go
package controller

import (
	"errors"

	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/pkg/serverutils"
	"project-nexus-be/internal/service"
	"project-nexus-be/pkg/content"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Sentiment(ctx *fiber.Ctx) error
	Joke(ctx *fiber.Ctx) error
	Image(ctx *fiber.Ctx) error
	Voice(ctx *fiber.Ctx) error
}

type assistantController struct {
	service service.IAssistantService
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{service: service}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant", serverutils.JwtMiddleware)
	h.Post("/chat", c.Chat)
	h.Post("/sentiment", c.Sentiment)
	h.Get("/joke", c.Joke)
	h.Post("/image", c.Image)
	h.Post("/voice", c.Voice)
}

func (c *assistantController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
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

	res, err := c.service.Chat(ctx.Context(), serverutils.UserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Assistant replied",
		"data":    res,
	})
}

func (c *assistantController) Sentiment(ctx *fiber.Ctx) error {
	var req dto.SentimentRequest
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

	res, err := c.service.Sentiment(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Sentiment scored",
		"data":    res,
	})
}

func (c *assistantController) Joke(ctx *fiber.Ctx) error {
	res, err := c.service.Joke(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Joke fetched",
		"data":    res,
	})
}

func (c *assistantController) Image(ctx *fiber.Ctx) error {
	var req dto.ImageRequest
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

	img, err := c.service.GenerateImage(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, content.ErrUnavailable) {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"code":    503,
				"message": "Image generation is not configured",
			})
		}
		return err
	}

	ctx.Set("Content-Type", "image/png")
	return ctx.Send(img)
}

func (c *assistantController) Voice(ctx *fiber.Ctx) error {
	var req dto.VoiceRequest
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

	res, err := c.service.Voice(ctx.Context(), serverutils.UserID(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Voice command interpreted",
		"data":    res,
	})
}
