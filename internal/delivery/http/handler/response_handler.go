package handler

import (
	"prajnayana/internal/delivery/http/dto"
	"prajnayana/internal/delivery/http/middleware"
	"prajnayana/internal/domain/questionnaire"
	"prajnayana/internal/pkg/response"
	"prajnayana/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ResponseHandler struct {
	uc usecase.QuestionnaireUsecase
}

type submitResponseRequest struct {
	SessionID      uuid.UUID `json:"test_session"`
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedOption int       `json:"selected_option"`
}

type bulkAnswerRequest struct {
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedOption int       `json:"selected_option"`
}

type bulkSubmitRequest struct {
	Responses []bulkAnswerRequest `json:"responses"`
}

func NewResponseHandler(uc usecase.QuestionnaireUsecase) *ResponseHandler {
	return &ResponseHandler{uc: uc}
}

func (h *ResponseHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Submit)
	r.Post("/bulk", h.BulkSubmit)
	r.Get("/:id", h.Get)
	r.Delete("/:id", h.Delete)
}

func (h *ResponseHandler) List(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	responses, err := h.uc.ListResponses(c.Context(), caller)
	if err != nil {
		return mapSessionError(err)
	}

	out := make([]dto.QuestionnaireResponseResponse, 0, len(responses))
	for _, resp := range responses {
		out = append(out, responseToResponse(resp))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ResponseHandler) Submit(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req submitResponseRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	resp, score, err := h.uc.SubmitResponse(c.Context(), caller, req.SessionID, req.QuestionID, questionnaire.Likert(req.SelectedOption))
	if err != nil {
		return mapSessionError(err)
	}

	data := map[string]any{
		"response":      responseToResponse(resp),
		"session_score": score,
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, data)
}

func (h *ResponseHandler) BulkSubmit(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req bulkSubmitRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	answers := make([]usecase.BulkAnswer, 0, len(req.Responses))
	for _, a := range req.Responses {
		answers = append(answers, usecase.BulkAnswer{
			QuestionID:     a.QuestionID,
			SelectedOption: questionnaire.Likert(a.SelectedOption),
		})
	}

	s, err := h.uc.BulkSubmit(c.Context(), caller, answers)
	if err != nil {
		return mapSessionError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Responses submitted successfully", sessionToResponse(s))
}

func (h *ResponseHandler) Get(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.uc.GetResponse(c.Context(), caller, id)
	if err != nil {
		return mapSessionError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, responseToResponse(resp))
}

func (h *ResponseHandler) Delete(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteResponse(c.Context(), caller, id); err != nil {
		return mapSessionError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
