package utils

import (
	httpError "tontine-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result carries a usecase outcome to the controller layer.
type Result struct {
	Data  interface{}
	Error interface{}
}

func Response(data interface{}, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(data)
}

// ResponseError maps a usecase error object to an HTTP error body.
// Unknown error values fall back to a plain 500.
func ResponseError(err interface{}, ctx *fiber.Ctx) error {
	if e, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(e.Code).JSON(fiber.Map{"error": e.Message})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
