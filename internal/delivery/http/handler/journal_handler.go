package handler

import (
	"errors"
	"time"

	"prajnayana/internal/delivery/http/dto"
	"prajnayana/internal/delivery/http/middleware"
	"prajnayana/internal/domain/journal"
	"prajnayana/internal/pkg/response"
	"prajnayana/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JournalHandler struct {
	uc usecase.JournalUsecase
}

type createJournalRequest struct {
	Date    string `json:"date"`
	Mood    string `json:"mood"`
	Content string `json:"content"`
}

type updateJournalRequest struct {
	Date    *string `json:"date"`
	Mood    *string `json:"mood"`
	Content *string `json:"content"`
}

func NewJournalHandler(uc usecase.JournalUsecase) *JournalHandler {
	return &JournalHandler{uc: uc}
}

func (h *JournalHandler) RegisterRoutes(r fiber.Router) {
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

func (h *JournalHandler) List(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	date, err := dateQuery(c)
	if err != nil {
		return err
	}

	entries, err := h.uc.List(c.Context(), caller, date)
	if err != nil {
		return mapJournalError(err)
	}

	out := make([]dto.JournalEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, journalToResponse(e))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JournalHandler) Create(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req createJournalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	var entryDate *time.Time
	if req.Date != "" {
		t, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil, err)
		}
		entryDate = &t
	}

	e, err := h.uc.Create(c.Context(), caller, usecase.CreateJournalInput{
		EntryDate: entryDate,
		Mood:      journal.Mood(req.Mood),
		Content:   req.Content,
	})
	if err != nil {
		return mapJournalError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, journalToResponse(e))
}

func (h *JournalHandler) Get(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	e, err := h.uc.Get(c.Context(), caller, id)
	if err != nil {
		return mapJournalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, journalToResponse(e))
}

func (h *JournalHandler) Update(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateJournalRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	fields := journal.UpdateFields{Content: req.Content}
	if req.Mood != nil {
		m := journal.Mood(*req.Mood)
		fields.Mood = &m
	}
	if req.Date != nil {
		t, err := time.ParseInLocation(dateLayout, *req.Date, time.UTC)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", nil, err)
		}
		fields.EntryDate = &t
	}

	if err := h.uc.Update(c.Context(), caller, id, fields); err != nil {
		return mapJournalError(err)
	}

	e, err := h.uc.Get(c.Context(), caller, id)
	if err != nil {
		return mapJournalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, journalToResponse(e))
}

func (h *JournalHandler) Delete(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), caller, id); err != nil {
		return mapJournalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapJournalError(err error) error {
	if appErr, ok := fieldErrors(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, journal.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Journal entry not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func journalToResponse(e journal.Entry) dto.JournalEntryResponse {
	return dto.JournalEntryResponse{
		ID:        e.ID,
		UserID:    e.UserID,
		EntryDate: e.EntryDate.Format(dateLayout),
		Mood:      string(e.Mood),
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}
