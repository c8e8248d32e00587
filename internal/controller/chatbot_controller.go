package controller

import (
	"cinimagic-be/internal/dto"
	"cinimagic-be/internal/pkg/serverutils"
	"cinimagic-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service service.IChatbotService
}

func NewChatbotController(service service.IChatbotService) IChatbotController {
	return &chatbotController{service: service}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.SendChat)
	h.Get("/history", c.GetChatHistory)
}

func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendChat(ctx.Context(), serverutils.SessionID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatbotController) GetChatHistory(ctx *fiber.Ctx) error {
	res, err := c.service.GetChatHistory(ctx.Context(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}
