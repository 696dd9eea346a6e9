package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/influencer-marketplace/backend/internal/apperr"
	"github.com/influencer-marketplace/backend/internal/http/dto"
	"github.com/influencer-marketplace/backend/internal/middleware"
)

// respondError maps the error taxonomy onto HTTP statuses. Unclassified
// errors surface as 503 with an opaque message so internals never leak.
func respondError(c *fiber.Ctx, err error) error {
	var status int
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = fiber.StatusNotFound
	case apperr.KindForbidden:
		status = fiber.StatusForbidden
	case apperr.KindConflict:
		status = fiber.StatusConflict
	case apperr.KindInvalidInput, apperr.KindInvalidState:
		status = fiber.StatusBadRequest
	default:
		status = fiber.StatusServiceUnavailable
	}

	reqID, _ := c.Locals(middleware.CtxRequestID).(string)
	return c.Status(status).JSON(dto.ErrorResponse{
		Error:     apperr.MessageOf(err),
		RequestID: reqID,
	})
}
