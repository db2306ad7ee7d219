package handler

import (
	"prajnayana/internal/delivery/http/dto"
	"prajnayana/internal/delivery/http/middleware"
	"prajnayana/internal/domain/content"
	"prajnayana/internal/pkg/response"
	"prajnayana/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ArticleHandler struct {
	uc usecase.ContentUsecase
}

type createArticleRequest struct {
	HubID   *uuid.UUID `json:"knowledge_hub"`
	Title   string     `json:"title"`
	Summary string     `json:"summary"`
	Content string     `json:"content"`
	Tags    string     `json:"tags"`
}

type updateArticleRequest struct {
	HubID   *uuid.UUID `json:"knowledge_hub"`
	Title   *string    `json:"title"`
	Summary *string    `json:"summary"`
	Content *string    `json:"content"`
	Tags    *string    `json:"tags"`
}

func NewArticleHandler(uc usecase.ContentUsecase) *ArticleHandler {
	return &ArticleHandler{uc: uc}
}

func (h *ArticleHandler) RegisterRoutes(r fiber.Router) {
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

func (h *ArticleHandler) List(c fiber.Ctx) error {
	if _, err := callerID(c); err != nil {
		return err
	}

	var hubID *uuid.UUID
	if raw := c.Query("knowledge_hub"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid knowledge_hub filter", nil, err)
		}
		hubID = &id
	}

	articles, err := h.uc.ListArticles(c.Context(), hubID, c.Query("search"))
	if err != nil {
		return mapContentError(err)
	}

	out := make([]dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, articleToResponse(a))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ArticleHandler) Create(c fiber.Ctx) error {
	if _, err := callerID(c); err != nil {
		return err
	}

	var req createArticleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	a, err := h.uc.CreateArticle(c.Context(), usecase.CreateArticleInput{
		HubID:   req.HubID,
		Title:   req.Title,
		Summary: req.Summary,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		return mapContentError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, articleToResponse(a))
}

func (h *ArticleHandler) Get(c fiber.Ctx) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	a, err := h.uc.GetArticle(c.Context(), id)
	if err != nil {
		return mapContentError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, articleToResponse(a))
}

func (h *ArticleHandler) Update(c fiber.Ctx) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateArticleRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	fields := content.ArticleUpdateFields{
		HubID:   req.HubID,
		Title:   req.Title,
		Summary: req.Summary,
		Content: req.Content,
		Tags:    req.Tags,
	}

	if err := h.uc.UpdateArticle(c.Context(), id, fields); err != nil {
		return mapContentError(err)
	}

	a, err := h.uc.GetArticle(c.Context(), id)
	if err != nil {
		return mapContentError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, articleToResponse(a))
}

func (h *ArticleHandler) Delete(c fiber.Ctx) error {
	if _, err := callerID(c); err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteArticle(c.Context(), id); err != nil {
		return mapContentError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func articleToResponse(a content.Article) dto.ArticleResponse {
	return dto.ArticleResponse{
		ID:        a.ID,
		HubID:     a.HubID,
		Title:     a.Title,
		Summary:   a.Summary,
		Content:   a.Content,
		Tags:      a.Tags,
		CreatedAt: a.CreatedAt,
	}
}
