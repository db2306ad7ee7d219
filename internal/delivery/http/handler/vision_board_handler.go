package handler

import (
	"errors"

	"prajnayana/internal/delivery/http/dto"
	"prajnayana/internal/delivery/http/middleware"
	"prajnayana/internal/domain/visionboard"
	"prajnayana/internal/pkg/response"
	"prajnayana/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type VisionBoardHandler struct {
	uc usecase.VisionBoardUsecase
}

type createVisionBoardRequest struct {
	Category string `json:"category"`
	Content  string `json:"content"`
	Favorite bool   `json:"favorite"`
}

type updateVisionBoardRequest struct {
	Category *string `json:"category"`
	Content  *string `json:"content"`
	Favorite *bool   `json:"favorite"`
}

func NewVisionBoardHandler(uc usecase.VisionBoardUsecase) *VisionBoardHandler {
	return &VisionBoardHandler{uc: uc}
}

func (h *VisionBoardHandler) RegisterRoutes(r fiber.Router) {
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

func (h *VisionBoardHandler) List(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), caller)
	if err != nil {
		return mapVisionBoardError(err)
	}

	out := make([]dto.VisionBoardItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, visionBoardToResponse(item))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *VisionBoardHandler) Create(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}

	var req createVisionBoardRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	item, err := h.uc.Create(c.Context(), caller, usecase.CreateVisionBoardInput{
		Category: visionboard.Category(req.Category),
		Content:  req.Content,
		Favorite: req.Favorite,
	})
	if err != nil {
		return mapVisionBoardError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, visionBoardToResponse(item))
}

func (h *VisionBoardHandler) Get(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.uc.Get(c.Context(), caller, id)
	if err != nil {
		return mapVisionBoardError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, visionBoardToResponse(item))
}

func (h *VisionBoardHandler) Update(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req updateVisionBoardRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	fields := visionboard.UpdateFields{Content: req.Content, Favorite: req.Favorite}
	if req.Category != nil {
		cat := visionboard.Category(*req.Category)
		fields.Category = &cat
	}

	if err := h.uc.Update(c.Context(), caller, id, fields); err != nil {
		return mapVisionBoardError(err)
	}

	item, err := h.uc.Get(c.Context(), caller, id)
	if err != nil {
		return mapVisionBoardError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, visionBoardToResponse(item))
}

func (h *VisionBoardHandler) Delete(c fiber.Ctx) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), caller, id); err != nil {
		return mapVisionBoardError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapVisionBoardError(err error) error {
	if appErr, ok := fieldErrors(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, visionboard.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Vision board item not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func visionBoardToResponse(item visionboard.Item) dto.VisionBoardItemResponse {
	return dto.VisionBoardItemResponse{
		ID:        item.ID,
		UserID:    item.UserID,
		Category:  string(item.Category),
		Content:   item.Content,
		Favorite:  item.Favorite,
		CreatedAt: item.CreatedAt,
	}
}
