package usecase

import (
	"context"
	"strings"
	"time"

	"prajnayana/internal/domain/habit"

	"github.com/google/uuid"
)

type CreateHabitInput struct {
	Title       string
	Description string
}

type CreateTrackingInput struct {
	HabitID   uuid.UUID
	TrackDate *time.Time
	Completed *bool
}

type HabitUsecase interface {
	CreateHabit(ctx context.Context, callerID uuid.UUID, in CreateHabitInput) (habit.Habit, error)
	ListHabits(ctx context.Context, callerID uuid.UUID) ([]habit.Habit, error)
	GetHabit(ctx context.Context, callerID, habitID uuid.UUID) (habit.Habit, error)
	UpdateHabit(ctx context.Context, callerID, habitID uuid.UUID, fields habit.UpdateFields) error
	DeleteHabit(ctx context.Context, callerID, habitID uuid.UUID) error

	Track(ctx context.Context, callerID uuid.UUID, in CreateTrackingInput) (habit.TrackingRecord, error)
	ListTracking(ctx context.Context, callerID uuid.UUID, date *time.Time) ([]habit.TrackingRecord, error)
	GetTracking(ctx context.Context, callerID, recordID uuid.UUID) (habit.TrackingRecord, error)
	SetTrackingCompleted(ctx context.Context, callerID, recordID uuid.UUID, completed bool) error
	DeleteTracking(ctx context.Context, callerID, recordID uuid.UUID) error
}

type Habits struct {
	habits   habit.Repository
	tracking habit.TrackingRepository

	now func() time.Time
}

func NewHabitUsecase(habits habit.Repository, tracking habit.TrackingRepository) *Habits {
	return &Habits{habits: habits, tracking: tracking, now: time.Now}
}

func (h *Habits) CreateHabit(ctx context.Context, callerID uuid.UUID, in CreateHabitInput) (habit.Habit, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return habit.Habit{}, FieldErrors{"title": "Title is required"}
	}

	// Owner is always the caller; users cannot author shared habits.
	owner := callerID
	hb := habit.Habit{
		ID:          uuid.New(),
		UserID:      &owner,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
	}
	if err := h.habits.Create(ctx, hb); err != nil {
		return habit.Habit{}, err
	}
	return hb, nil
}

func (h *Habits) ListHabits(ctx context.Context, callerID uuid.UUID) ([]habit.Habit, error) {
	return h.habits.ListVisible(ctx, callerID)
}

func (h *Habits) GetHabit(ctx context.Context, callerID, habitID uuid.UUID) (habit.Habit, error) {
	return h.visibleHabit(ctx, callerID, habitID)
}

func (h *Habits) UpdateHabit(ctx context.Context, callerID, habitID uuid.UUID, fields habit.UpdateFields) error {
	if err := h.requireOwnHabit(ctx, callerID, habitID); err != nil {
		return err
	}
	if fields.Title != nil && strings.TrimSpace(*fields.Title) == "" {
		return FieldErrors{"title": "Title is required"}
	}
	return h.habits.Update(ctx, habitID, fields)
}

func (h *Habits) DeleteHabit(ctx context.Context, callerID, habitID uuid.UUID) error {
	if err := h.requireOwnHabit(ctx, callerID, habitID); err != nil {
		return err
	}
	return h.habits.Delete(ctx, habitID)
}

func (h *Habits) Track(ctx context.Context, callerID uuid.UUID, in CreateTrackingInput) (habit.TrackingRecord, error) {
	hb, err := h.habits.GetByID(ctx, in.HabitID)
	if err != nil {
		return habit.TrackingRecord{}, err
	}
	if !hb.Shared() && *hb.UserID != callerID {
		return habit.TrackingRecord{}, FieldErrors{"habit": "You can only track habits that belong to you."}
	}

	day := dateOnly(h.now())
	if in.TrackDate != nil {
		day = dateOnly(*in.TrackDate)
	}
	completed := true
	if in.Completed != nil {
		completed = *in.Completed
	}

	rec := habit.TrackingRecord{
		ID:        uuid.New(),
		HabitID:   hb.ID,
		UserID:    callerID,
		TrackDate: day,
		Completed: completed,
	}
	if err := h.tracking.Create(ctx, rec); err != nil {
		return habit.TrackingRecord{}, err
	}
	return rec, nil
}

func (h *Habits) ListTracking(ctx context.Context, callerID uuid.UUID, date *time.Time) ([]habit.TrackingRecord, error) {
	return h.tracking.ListByUser(ctx, callerID, date)
}

func (h *Habits) GetTracking(ctx context.Context, callerID, recordID uuid.UUID) (habit.TrackingRecord, error) {
	rec, err := h.tracking.GetByID(ctx, recordID)
	if err != nil {
		return habit.TrackingRecord{}, err
	}
	if rec.UserID != callerID {
		return habit.TrackingRecord{}, habit.ErrRecordNotFound
	}
	return rec, nil
}

func (h *Habits) SetTrackingCompleted(ctx context.Context, callerID, recordID uuid.UUID, completed bool) error {
	if _, err := h.GetTracking(ctx, callerID, recordID); err != nil {
		return err
	}
	return h.tracking.SetCompleted(ctx, recordID, completed)
}

func (h *Habits) DeleteTracking(ctx context.Context, callerID, recordID uuid.UUID) error {
	if _, err := h.GetTracking(ctx, callerID, recordID); err != nil {
		return err
	}
	return h.tracking.Delete(ctx, recordID)
}

// visibleHabit returns the habit when it is the caller's own or shared,
// habit.ErrNotFound otherwise.
func (h *Habits) visibleHabit(ctx context.Context, callerID, habitID uuid.UUID) (habit.Habit, error) {
	hb, err := h.habits.GetByID(ctx, habitID)
	if err != nil {
		return habit.Habit{}, err
	}
	if !hb.Shared() && *hb.UserID != callerID {
		return habit.Habit{}, habit.ErrNotFound
	}
	return hb, nil
}

// requireOwnHabit admits only the caller's own habits; shared habits are
// read-only to users.
func (h *Habits) requireOwnHabit(ctx context.Context, callerID, habitID uuid.UUID) error {
	hb, err := h.habits.GetByID(ctx, habitID)
	if err != nil {
		return err
	}
	if hb.Shared() || *hb.UserID != callerID {
		return habit.ErrNotFound
	}
	return nil
}
