package controller

import (
	"cinimagic-be/internal/pkg/serverutils"
	"cinimagic-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHomeController interface {
	RegisterRoutes(r fiber.Router)
	GetHome(ctx *fiber.Ctx) error
}

type homeController struct {
	service service.IHomeService
}

func NewHomeController(service service.IHomeService) IHomeController {
	return &homeController{service: service}
}

func (c *homeController) RegisterRoutes(r fiber.Router) {
	r.Get("/home", serverutils.JwtMiddleware, c.GetHome)
}

func (c *homeController) GetHome(ctx *fiber.Ctx) error {
	res, err := c.service.GetHome(ctx.Context(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get home", res))
}
