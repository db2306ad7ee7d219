package usecase

import (
	"context"
	"strings"

	"prajnayana/internal/domain/visionboard"

	"github.com/google/uuid"
)

type CreateVisionBoardInput struct {
	Category visionboard.Category
	Content  string
	Favorite bool
}

type VisionBoardUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, in CreateVisionBoardInput) (visionboard.Item, error)
	List(ctx context.Context, callerID uuid.UUID) ([]visionboard.Item, error)
	Get(ctx context.Context, callerID, itemID uuid.UUID) (visionboard.Item, error)
	Update(ctx context.Context, callerID, itemID uuid.UUID, fields visionboard.UpdateFields) error
	Delete(ctx context.Context, callerID, itemID uuid.UUID) error
}

type VisionBoard struct {
	items visionboard.Repository
}

func NewVisionBoardUsecase(items visionboard.Repository) *VisionBoard {
	return &VisionBoard{items: items}
}

func (v *VisionBoard) Create(ctx context.Context, callerID uuid.UUID, in CreateVisionBoardInput) (visionboard.Item, error) {
	if !in.Category.Valid() {
		return visionboard.Item{}, FieldErrors{"category": "Invalid category"}
	}
	body := strings.TrimSpace(in.Content)
	if body == "" {
		return visionboard.Item{}, FieldErrors{"content": "Content is required"}
	}

	item := visionboard.Item{
		ID:       uuid.New(),
		UserID:   callerID,
		Category: in.Category,
		Content:  body,
		Favorite: in.Favorite,
	}
	if err := v.items.Create(ctx, item); err != nil {
		return visionboard.Item{}, err
	}
	return item, nil
}

func (v *VisionBoard) List(ctx context.Context, callerID uuid.UUID) ([]visionboard.Item, error) {
	return v.items.ListByUser(ctx, callerID)
}

func (v *VisionBoard) Get(ctx context.Context, callerID, itemID uuid.UUID) (visionboard.Item, error) {
	return v.ownedItem(ctx, callerID, itemID)
}

func (v *VisionBoard) Update(ctx context.Context, callerID, itemID uuid.UUID, fields visionboard.UpdateFields) error {
	if _, err := v.ownedItem(ctx, callerID, itemID); err != nil {
		return err
	}
	if fields.Category != nil && !fields.Category.Valid() {
		return FieldErrors{"category": "Invalid category"}
	}
	if fields.Content != nil && strings.TrimSpace(*fields.Content) == "" {
		return FieldErrors{"content": "Content is required"}
	}
	return v.items.Update(ctx, itemID, fields)
}

func (v *VisionBoard) Delete(ctx context.Context, callerID, itemID uuid.UUID) error {
	if _, err := v.ownedItem(ctx, callerID, itemID); err != nil {
		return err
	}
	return v.items.Delete(ctx, itemID)
}

func (v *VisionBoard) ownedItem(ctx context.Context, callerID, itemID uuid.UUID) (visionboard.Item, error) {
	item, err := v.items.GetByID(ctx, itemID)
	if err != nil {
		return visionboard.Item{}, err
	}
	if item.UserID != callerID {
		return visionboard.Item{}, visionboard.ErrNotFound
	}
	return item, nil
}
