package serverutils

import "github.com/gofiber/fiber/v2"

// SuccessResponse wraps payloads in the shared JSON envelope.
func SuccessResponse(message string, data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"code":    fiber.StatusOK,
		"message": message,
		"data":    data,
	}
}
