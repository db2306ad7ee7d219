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

// QuestionHandler serves the discovery questions, read-only to end users.
type QuestionHandler struct {
	uc usecase.QuestionnaireUsecase
}

func NewQuestionHandler(uc usecase.QuestionnaireUsecase) *QuestionHandler {
	return &QuestionHandler{uc: uc}
}

func (h *QuestionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

func (h *QuestionHandler) List(c fiber.Ctx) error {
	questions, err := h.uc.ListQuestions(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.QuestionResponse{ID: q.ID, Text: q.Text})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *QuestionHandler) Get(c fiber.Ctx) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	q, err := h.uc.GetQuestion(c.Context(), id)
	if err != nil {
		if errors.Is(err, questionnaire.ErrQuestionNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Question not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.QuestionResponse{ID: q.ID, Text: q.Text})
}
