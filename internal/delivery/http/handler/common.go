package handler

import (
	"errors"
	"time"

	"prajnayana/internal/delivery/http/middleware"
	"prajnayana/internal/pkg/response"
	"prajnayana/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

func callerID(c fiber.Ctx) (uuid.UUID, error) {
	id, ok := middleware.CallerID(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return id, nil
}

func pathUUID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	}
	return id, nil
}

// dateQuery parses an optional ?date=YYYY-MM-DD filter.
func dateQuery(c fiber.Ctx) (*time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil, err)
	}
	return &t, nil
}

// fieldErrors converts a usecase validation failure into a 400 carrying the
// per-field messages, or reports that err is something else.
func fieldErrors(err error) (*middleware.AppError, bool) {
	var ferrs usecase.FieldErrors
	if !errors.As(err, &ferrs) {
		return nil, false
	}
	return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, map[string]string(ferrs), err), true
}
