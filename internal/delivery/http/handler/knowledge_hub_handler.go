package handler

import (
	"errors"

	"prajnayana/internal/delivery/http/dto"
	"prajnayana/internal/delivery/http/middleware"
	"prajnayana/internal/domain/content"
	"prajnayana/internal/pkg/response"
	"prajnayana/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type KnowledgeHubHandler struct {
	uc usecase.ContentUsecase
}

type createHubRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Level       int    `json:"level"`
}

type updateHubRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Level       *int    `json:"level"`
}

func NewKnowledgeHubHandler(uc usecase.ContentUsecase) *KnowledgeHubHandler {
	return &KnowledgeHubHandler{uc: uc}
}

func (h *KnowledgeHubHandler) RegisterRoutes(r fiber.Router) {
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

func (h *KnowledgeHubHandler) List(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	hubs, err := h.uc.ListHubs(c.Context(), caller, c.Query("search"))
	if err != nil {
		return mapContentError(err)
	}

	out := make([]dto.KnowledgeHubResponse, 0, len(hubs))
	for _, hub := range hubs {
		out = append(out, hubToResponse(hub))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *KnowledgeHubHandler) Create(c fiber.Ctx) error {
	if _, err := callerID(c); err != nil {
		return err
	}

	var req createHubRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	hub, err := h.uc.CreateHub(c.Context(), usecase.CreateHubInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    content.Category(req.Category),
		Level:       req.Level,
	})
	if err != nil {
		return mapContentError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, hubToResponse(hub))
}

func (h *KnowledgeHubHandler) Get(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	hub, err := h.uc.GetHub(c.Context(), caller, id)
	if err != nil {
		return mapContentError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, hubToResponse(hub))
}

func (h *KnowledgeHubHandler) Update(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateHubRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	fields := content.HubUpdateFields{
		Title:       req.Title,
		Description: req.Description,
		Level:       req.Level,
	}
	if req.Category != nil {
		cat := content.Category(*req.Category)
		fields.Category = &cat
	}

	if err := h.uc.UpdateHub(c.Context(), id, fields); err != nil {
		return mapContentError(err)
	}

	hub, err := h.uc.GetHub(c.Context(), caller, id)
	if err != nil {
		return mapContentError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, hubToResponse(hub))
}

func (h *KnowledgeHubHandler) Delete(c fiber.Ctx) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteHub(c.Context(), id); err != nil {
		return mapContentError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapContentError(err error) error {
	if appErr, ok := fieldErrors(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, content.ErrHubNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Knowledge hub not found", nil, err)
	case errors.Is(err, content.ErrArticleNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Article not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func hubToResponse(h content.Hub) dto.KnowledgeHubResponse {
	return dto.KnowledgeHubResponse{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		Category:    string(h.Category),
		Level:       h.Level,
		CreatedAt:   h.CreatedAt,
	}
}
