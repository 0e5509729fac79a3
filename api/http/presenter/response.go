package presenter

import "github.com/gofiber/fiber/v2"

type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse always carries a message. Detail is filled only in debug mode.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func OK(c *fiber.Ctx, data any) error {
	return JSON(c, fiber.StatusOK, SuccessResponse{Success: true, Data: data})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return ErrorDetail(c, status, message, "")
}

func ErrorDetail(c *fiber.Ctx, status int, message, detail string) error {
	return JSON(c, status, ErrorResponse{Message: message, Detail: detail})
}
