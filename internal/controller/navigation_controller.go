package controller

import (
	"cinimagic-be/internal/dto"
	"cinimagic-be/internal/pkg/serverutils"
	"cinimagic-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INavigationController interface {
	RegisterRoutes(r fiber.Router)
	Navigate(ctx *fiber.Ctx) error
}

type navigationController struct {
	service service.INavigationService
}

func NewNavigationController(service service.INavigationService) INavigationController {
	return &navigationController{service: service}
}

func (c *navigationController) RegisterRoutes(r fiber.Router) {
	r.Post("/navigate", serverutils.JwtMiddleware, c.Navigate)
}

func (c *navigationController) Navigate(ctx *fiber.Ctx) error {
	var req dto.NavigateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Navigate(ctx.Context(), serverutils.SessionID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Navigation applied", res))
}
