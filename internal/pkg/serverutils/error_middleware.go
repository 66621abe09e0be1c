package serverutils

import (
	"errors"

	"ai-shopping-be/internal/service"
	"ai-shopping-be/pkg/research"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates pipeline errors into HTTP statuses.
// Services return plain errors; this is the single place that knows what
// each one means to a client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status, message := mapError(err)
		return ctx.Status(status).JSON(ErrorResponse(message))
	}
}

func mapError(err error) (int, string) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	switch {
	case errors.Is(err, research.ErrSessionNotFound):
		return fiber.StatusNotFound, "search session not found or expired, generate a new survey"
	case errors.Is(err, research.ErrIntentUnavailable):
		return fiber.StatusServiceUnavailable, "could not analyze your answers, please try again"
	case errors.Is(err, research.ErrCollaboratorUnavailable):
		return fiber.StatusServiceUnavailable, "a backing service is unavailable, please try again"
	case errors.Is(err, research.ErrMalformedResponse):
		return fiber.StatusBadGateway, "a backing service returned an unusable response"
	case errors.Is(err, service.ErrProductNotFound):
		return fiber.StatusNotFound, "product not found"
	}

	return fiber.StatusInternalServerError, "internal server error"
}
