package serverutils

import "github.com/gofiber/fiber/v2"

// SuccessResponse wraps a payload in the standard JSON envelope.
func SuccessResponse(message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"code":    200,
		"message": message,
		"data":    data,
	}
}
