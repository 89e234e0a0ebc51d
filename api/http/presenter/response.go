package presenter

import "github.com/gofiber/fiber/v2"

type ErrorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// ErrorDetail adds a diagnostic detail, e.g. the wrapped store error.
func ErrorDetail(c *fiber.Ctx, status int, message string, err error) error {
	return JSON(c, status, ErrorResponse{Message: message, Detail: err.Error()})
}
