package serverutils

import (
	"cinimagic-be/internal/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts typed service errors into the JSON
// envelope. Recoverable errors carry their message to the user; anything
// untyped is a 500 with a generic message.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := "internal server error"

		switch {
		case apperrors.IsNotFound(err):
			status = fiber.StatusNotFound
			message = err.Error()
		case apperrors.IsValidation(err):
			status = fiber.StatusBadRequest
			message = err.Error()
		case apperrors.IsConfiguration(err):
			status = fiber.StatusServiceUnavailable
			message = err.Error()
		case apperrors.IsExternalService(err):
			status = fiber.StatusBadGateway
			message = "upstream service unavailable"
		default:
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
				message = fiberErr.Message
			}
		}

		return ctx.Status(status).JSON(fiber.Map{
			"success": false,
			"code":    status,
			"message": message,
		})
	}
}
