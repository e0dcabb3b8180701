package errx

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// FiberErrorHandler converts errors escaping Fiber handlers into the
// API's wire shape: {success:false, code, message} with the error's HTTP
// status. Unrecognized errors become a generic 500 so internal detail,
// configuration, and credentials never leak to callers.
func FiberErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", c.Get("X-Request-ID")).
			Msg("request error")

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"code":    "HTTP_ERROR",
				"message": fiberErr.Message,
			})
		}

		var appErr *Error
		if errors.As(err, &appErr) {
			response := fiber.Map{
				"success": false,
				"code":    appErr.Code,
				"message": appErr.Message,
			}
			if len(appErr.Details) > 0 {
				response["details"] = appErr.Details
			}
			return c.Status(appErr.HTTPStatus).JSON(response)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    "INTERNAL_ERROR",
			"message": "An unexpected error occurred",
		})
	}
}
