package controller

import (
	"errors"

	"cinimagic-be/internal/dto"
	"cinimagic-be/internal/pkg/serverutils"
	"cinimagic-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Signup(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/signup", c.Signup)
	h.Post("/login", c.Login)
	h.Post("/logout", serverutils.JwtMiddleware, c.Logout)
}

func (c *authController) Signup(ctx *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Signup(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Account created successfully", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.Context(), &req)
	if err != nil {
		// Bad credentials get a 401 instead of the generic envelope so the
		// client can show the login form error inline.
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"code":    401,
				"message": err.Error(),
			})
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if err := c.service.Logout(ctx.Context(), serverutils.SessionID(ctx)); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Logged out", nil))
}
