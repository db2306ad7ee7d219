package habit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("habit not found")
	ErrRecordNotFound    = errors.New("tracking record not found")
	ErrDuplicateTracking = errors.New("habit already tracked for this day")
)

type UpdateFields struct {
	Title       *string
	Description *string
}

type Repository interface {
	Create(ctx context.Context, h Habit) error
	GetByID(ctx context.Context, id uuid.UUID) (Habit, error)
	// ListVisible returns the user's own habits plus shared (ownerless) ones.
	ListVisible(ctx context.Context, userID uuid.UUID) ([]Habit, error)
	Update(ctx context.Context, id uuid.UUID, fields UpdateFields) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TrackingRepository interface {
	// Create inserts a record; a (habit, user, day) unique-constraint
	// violation surfaces as ErrDuplicateTracking.
	Create(ctx context.Context, r TrackingRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (TrackingRecord, error)
	// ListByUser filters by exact date when date is non-nil.
	ListByUser(ctx context.Context, userID uuid.UUID, date *time.Time) ([]TrackingRecord, error)
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
