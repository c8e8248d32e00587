package controller

import (
	"cinimagic-be/internal/dto"
	"cinimagic-be/internal/pkg/serverutils"
	"cinimagic-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router)
	GetMovies(ctx *fiber.Ctx) error
	Recommend(ctx *fiber.Ctx) error
}

type recommendationController struct {
	service service.IRecommendationService
}

func NewRecommendationController(service service.IRecommendationService) IRecommendationController {
	return &recommendationController{service: service}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router) {
	r.Get("/movies", serverutils.JwtMiddleware, c.GetMovies)
	r.Post("/recommendations", serverutils.JwtMiddleware, c.Recommend)
}

func (c *recommendationController) GetMovies(ctx *fiber.Ctx) error {
	res, err := c.service.GetMovies(ctx.Context(), serverutils.SessionID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get movies", res))
}

func (c *recommendationController) Recommend(ctx *fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Recommend(ctx.Context(), serverutils.SessionID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get recommendations", res))
}
