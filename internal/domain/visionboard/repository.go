package visionboard

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("vision board item not found")

type UpdateFields struct {
	Category *Category
	Content  *string
	Favorite *bool
}

type Repository interface {
	Create(ctx context.Context, item Item) error
	GetByID(ctx context.Context, id uuid.UUID) (Item, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Item, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) error
	Delete(ctx context.Context, id uuid.UUID) error
}
