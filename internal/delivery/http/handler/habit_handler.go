package handler

import (
	"errors"

	"prajnayana/internal/delivery/http/dto"
	"prajnayana/internal/delivery/http/middleware"
	"prajnayana/internal/domain/habit"
	"prajnayana/internal/pkg/response"
	"prajnayana/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type HabitHandler struct {
	uc usecase.HabitUsecase
}

type createHabitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateHabitRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func NewHabitHandler(uc usecase.HabitUsecase) *HabitHandler {
	return &HabitHandler{uc: uc}
}

func (h *HabitHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Patch("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *HabitHandler) List(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	habits, err := h.uc.ListHabits(c.Context(), caller)
	if err != nil {
		return mapHabitError(err)
	}

	out := make([]dto.HabitResponse, 0, len(habits))
	for _, hb := range habits {
		out = append(out, habitToResponse(hb))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *HabitHandler) Create(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req createHabitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	hb, err := h.uc.CreateHabit(c.Context(), caller, usecase.CreateHabitInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return mapHabitError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, habitToResponse(hb))
}

func (h *HabitHandler) Get(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	hb, err := h.uc.GetHabit(c.Context(), caller, id)
	if err != nil {
		return mapHabitError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, habitToResponse(hb))
}

func (h *HabitHandler) Update(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateHabitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	fields := habit.UpdateFields{Title: req.Title, Description: req.Description}
	if err := h.uc.UpdateHabit(c.Context(), caller, id, fields); err != nil {
		return mapHabitError(err)
	}

	hb, err := h.uc.GetHabit(c.Context(), caller, id)
	if err != nil {
		return mapHabitError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, habitToResponse(hb))
}

func (h *HabitHandler) Delete(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteHabit(c.Context(), caller, id); err != nil {
		return mapHabitError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapHabitError(err error) error {
	if appErr, ok := fieldErrors(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, habit.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Habit not found", nil, err)
	case errors.Is(err, habit.ErrRecordNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Tracking record not found", nil, err)
	case errors.Is(err, habit.ErrDuplicateTracking):
		return middleware.NewAppError(fiber.StatusConflict, "Habit already tracked for this date.", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func habitToResponse(hb habit.Habit) dto.HabitResponse {
	return dto.HabitResponse{
		ID:          hb.ID,
		UserID:      hb.UserID,
		Title:       hb.Title,
		Description: hb.Description,
		Shared:      hb.Shared(),
		CreatedAt:   hb.CreatedAt,
	}
}
