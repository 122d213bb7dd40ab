package serverutils

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware recovers panics and normalizes fiber errors into
// the JSON error envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				err := ctx.Status(fiber.StatusInternalServerError).
					JSON(ErrorResponse(500, fmt.Sprintf("internal server error: %v", r)))
				if err != nil {
					log.Printf("Error writing panic response: %v", err)
				}
			}
		}()

		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		return ctx.Status(code).JSON(ErrorResponse(code, err.Error()))
	}
}
