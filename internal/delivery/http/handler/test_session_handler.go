package handler

import (
	"errors"

	"prajnayana/internal/delivery/http/dto"
	"prajnayana/internal/delivery/http/middleware"
	"prajnayana/internal/domain/questionnaire"
	"prajnayana/internal/pkg/response"
	"prajnayana/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TestSessionHandler struct {
	uc usecase.QuestionnaireUsecase
}

func NewTestSessionHandler(uc usecase.QuestionnaireUsecase) *TestSessionHandler {
	return &TestSessionHandler{uc: uc}
}

func (h *TestSessionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
	r.Get("/:id/responses", h.ListResponses)
	r.Delete("/:id", h.Delete)
}

func (h *TestSessionHandler) List(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	sessions, err := h.uc.ListSessions(c.Context(), caller)
	if err != nil {
		return mapSessionError(err)
	}

	out := make([]dto.TestSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, sessionToResponse(s))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *TestSessionHandler) Create(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	s, err := h.uc.CreateSession(c.Context(), caller)
	if err != nil {
		return mapSessionError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, sessionToResponse(s))
}

func (h *TestSessionHandler) Get(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	s, err := h.uc.GetSession(c.Context(), caller, id)
	if err != nil {
		return mapSessionError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, sessionToResponse(s))
}

func (h *TestSessionHandler) ListResponses(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	responses, err := h.uc.ListSessionResponses(c.Context(), caller, id)
	if err != nil {
		return mapSessionError(err)
	}

	out := make([]dto.QuestionnaireResponseResponse, 0, len(responses))
	for _, resp := range responses {
		out = append(out, responseToResponse(resp))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *TestSessionHandler) Delete(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSession(c.Context(), caller, id); err != nil {
		return mapSessionError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapSessionError(err error) error {
	if appErr, ok := fieldErrors(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, questionnaire.ErrDailySessionExists):
		return middleware.NewAppError(fiber.StatusConflict, "You already have a test session for today.", nil, err)
	case errors.Is(err, questionnaire.ErrSessionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Test session not found", nil, err)
	case errors.Is(err, questionnaire.ErrResponseNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Response not found", nil, err)
	case errors.Is(err, questionnaire.ErrQuestionNotFound):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest,
			map[string]string{"question_id": "Question does not exist"}, err)
	case errors.Is(err, questionnaire.ErrDuplicateResponse):
		return middleware.NewAppError(fiber.StatusBadRequest, "Response for this question already exists.", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func sessionToResponse(s questionnaire.Session) dto.TestSessionResponse {
	return dto.TestSessionResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		Score:     s.Score,
		TakenOn:   s.TakenOn.Format(dateLayout),
		CreatedAt: s.CreatedAt,
	}
}

func responseToResponse(resp questionnaire.Response) dto.QuestionnaireResponseResponse {
	return dto.QuestionnaireResponseResponse{
		ID:             resp.ID,
		SessionID:      resp.SessionID,
		QuestionID:     resp.QuestionID,
		SelectedOption: int(resp.SelectedOption),
		OptionLabel:    resp.SelectedOption.Label(),
	}
}
