// FILE: internal/controller/cart_controller.go
package controller

import (
	"errors"
	"net/url"

	"project-nexus-be/internal/dto"
	"project-nexus-be/internal/pkg/serverutils"
	"project-nexus-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICartController interface {
	RegisterRoutes(r fiber.Router)
	View(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	Wishlist(ctx *fiber.Ctx) error
	SaveForLater(ctx *fiber.Ctx) error
	RemoveFromWishlist(ctx *fiber.Ctx) error
}

type cartController struct {
	service service.ICartService
}

func NewCartController(service service.ICartService) ICartController {
	return &cartController{service: service}
}

func (c *cartController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cart", serverutils.JwtMiddleware)
	h.Get("/", c.View)
	h.Post("/items", c.Add)
	h.Delete("/items/:name", c.Remove)
	h.Post("/checkout", c.Checkout)
	h.Get("/history", c.History)

	w := r.Group("/wishlist", serverutils.JwtMiddleware)
	w.Get("/", c.Wishlist)
	w.Post("/items", c.SaveForLater)
	w.Delete("/items/:name", c.RemoveFromWishlist)
}

func (c *cartController) View(ctx *fiber.Ctx) error {
	res, err := c.service.View(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Cart retrieved",
		"data":    res,
	})
}

func (c *cartController) Add(ctx *fiber.Ctx) error {
	var req dto.CartItemRequest
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

	res, err := c.service.Add(ctx.Context(), serverutils.UserID(ctx), req.Name)
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
		"message": "Item added to cart",
		"data":    res,
	})
}

func (c *cartController) Remove(ctx *fiber.Ctx) error {
	name, err := decodeNameParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.Remove(ctx.Context(), serverutils.UserID(ctx), name)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Item removed from cart",
		"data":    res,
	})
}

func (c *cartController) Checkout(ctx *fiber.Ctx) error {
	res, err := c.service.Checkout(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"code":    400,
				"message": err.Error(),
			})
		}
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Checkout complete",
		"data":    res,
	})
}

func (c *cartController) History(ctx *fiber.Ctx) error {
	res, err := c.service.History(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Purchase history retrieved",
		"data":    res,
	})
}

func (c *cartController) Wishlist(ctx *fiber.Ctx) error {
	res, err := c.service.Wishlist(ctx.Context(), serverutils.UserID(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Wishlist retrieved",
		"data":    res,
	})
}

func (c *cartController) SaveForLater(ctx *fiber.Ctx) error {
	var req dto.CartItemRequest
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

	res, err := c.service.SaveForLater(ctx.Context(), serverutils.UserID(ctx), req.Name)
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
		"message": "Item saved for later",
		"data":    res,
	})
}

func (c *cartController) RemoveFromWishlist(ctx *fiber.Ctx) error {
	name, err := decodeNameParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.RemoveFromWishlist(ctx.Context(), serverutils.UserID(ctx), name)
	if err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Item removed from wishlist",
		"data":    res,
	})
}

// decodeNameParam unescapes the :name path segment so product names with
// spaces round-trip cleanly.
func decodeNameParam(ctx *fiber.Ctx) (string, error) {
	decoded, err := url.PathUnescape(ctx.Params("name"))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid item name")
	}
	return decoded, nil
}
