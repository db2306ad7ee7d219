package handler

import (
	"time"

	"prajnayana/internal/delivery/http/dto"
	"prajnayana/internal/delivery/http/middleware"
	"prajnayana/internal/domain/habit"
	"prajnayana/internal/pkg/response"
	"prajnayana/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type TrackingHandler struct {
	uc usecase.HabitUsecase
}

type createTrackingRequest struct {
	HabitID   uuid.UUID `json:"habit_id"`
	Date      string    `json:"date"`
	Completed *bool     `json:"completed"`
}

type updateTrackingRequest struct {
	Completed bool `json:"completed"`
}

func NewTrackingHandler(uc usecase.HabitUsecase) *TrackingHandler {
	return &TrackingHandler{uc: uc}
}

func (h *TrackingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Patch("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *TrackingHandler) List(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	date, err := dateQuery(c)
	if err != nil {
		return err
	}

	records, err := h.uc.ListTracking(c.Context(), caller, date)
	if err != nil {
		return mapHabitError(err)
	}

	out := make([]dto.TrackingRecordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, trackingToResponse(rec))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *TrackingHandler) Create(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req createTrackingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	var trackDate *time.Time
	if req.Date != "" {
		t, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil, err)
		}
		trackDate = &t
	}

	rec, err := h.uc.Track(c.Context(), caller, usecase.CreateTrackingInput{
		HabitID:   req.HabitID,
		TrackDate: trackDate,
		Completed: req.Completed,
	})
	if err != nil {
		return mapHabitError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, trackingToResponse(rec))
}

func (h *TrackingHandler) Get(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	rec, err := h.uc.GetTracking(c.Context(), caller, id)
	if err != nil {
		return mapHabitError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, trackingToResponse(rec))
}

func (h *TrackingHandler) Update(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateTrackingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	if err := h.uc.SetTrackingCompleted(c.Context(), caller, id, req.Completed); err != nil {
		return mapHabitError(err)
	}

	rec, err := h.uc.GetTracking(c.Context(), caller, id)
	if err != nil {
		return mapHabitError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, trackingToResponse(rec))
}

func (h *TrackingHandler) Delete(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTracking(c.Context(), caller, id); err != nil {
		return mapHabitError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func trackingToResponse(rec habit.TrackingRecord) dto.TrackingRecordResponse {
	return dto.TrackingRecordResponse{
		ID:        rec.ID,
		HabitID:   rec.HabitID,
		UserID:    rec.UserID,
		TrackDate: rec.TrackDate.Format(dateLayout),
		Completed: rec.Completed,
		CreatedAt: rec.CreatedAt,
	}
}
