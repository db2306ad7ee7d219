package journal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("journal entry not found")

type UpdateFields struct {
	EntryDate *time.Time
	Mood      *Mood
	Content   *string
}

type Repository interface {
	Create(ctx context.Context, e Entry) error
	GetByID(ctx context.Context, id uuid.UUID) (Entry, error)
	// ListByUser filters by exact entry date when date is non-nil, ordered
	// by created_at descending.
	ListByUser(ctx context.Context, userID uuid.UUID, date *time.Time) ([]Entry, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) error
	Delete(ctx context.Context, id uuid.UUID) error
}
