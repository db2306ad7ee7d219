package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"prajnayana/internal/domain/habit"

	"github.com/google/uuid"
)

type mockHabitRepo struct {
	habits map[uuid.UUID]habit.Habit
}

func newMockHabitRepo(habits ...habit.Habit) *mockHabitRepo {
	m := &mockHabitRepo{habits: map[uuid.UUID]habit.Habit{}}
	for _, h := range habits {
		m.habits[h.ID] = h
	}
	return m
}

func (m *mockHabitRepo) Create(_ context.Context, h habit.Habit) error {
	m.habits[h.ID] = h
	return nil
}

func (m *mockHabitRepo) GetByID(_ context.Context, id uuid.UUID) (habit.Habit, error) {
	h, ok := m.habits[id]
	if !ok {
		return habit.Habit{}, habit.ErrNotFound
	}
	return h, nil
}

func (m *mockHabitRepo) ListVisible(_ context.Context, userID uuid.UUID) ([]habit.Habit, error) {
	var out []habit.Habit
	for _, h := range m.habits {
		if h.Shared() || *h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *mockHabitRepo) Update(_ context.Context, id uuid.UUID, fields habit.UpdateFields) error {
	h, ok := m.habits[id]
	if !ok {
		return habit.ErrNotFound
	}
	if fields.Title != nil {
		h.Title = *fields.Title
	}
	if fields.Description != nil {
		h.Description = *fields.Description
	}
	m.habits[id] = h
	return nil
}

func (m *mockHabitRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.habits[id]; !ok {
		return habit.ErrNotFound
	}
	delete(m.habits, id)
	return nil
}

type mockTrackingRepo struct {
	records map[uuid.UUID]habit.TrackingRecord
}

func newMockTrackingRepo() *mockTrackingRepo {
	return &mockTrackingRepo{records: map[uuid.UUID]habit.TrackingRecord{}}
}

func (m *mockTrackingRepo) Create(_ context.Context, r habit.TrackingRecord) error {
	for _, existing := range m.records {
		if existing.HabitID == r.HabitID && existing.UserID == r.UserID && existing.TrackDate.Equal(r.TrackDate) {
			return habit.ErrDuplicateTracking
		}
	}
	m.records[r.ID] = r
	return nil
}

func (m *mockTrackingRepo) GetByID(_ context.Context, id uuid.UUID) (habit.TrackingRecord, error) {
	r, ok := m.records[id]
	if !ok {
		return habit.TrackingRecord{}, habit.ErrRecordNotFound
	}
	return r, nil
}

func (m *mockTrackingRepo) ListByUser(_ context.Context, userID uuid.UUID, date *time.Time) ([]habit.TrackingRecord, error) {
	var out []habit.TrackingRecord
	for _, r := range m.records {
		if r.UserID != userID {
			continue
		}
		if date != nil && !r.TrackDate.Equal(*date) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockTrackingRepo) SetCompleted(_ context.Context, id uuid.UUID, completed bool) error {
	r, ok := m.records[id]
	if !ok {
		return habit.ErrRecordNotFound
	}
	r.Completed = completed
	m.records[id] = r
	return nil
}

func (m *mockTrackingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.records[id]; !ok {
		return habit.ErrRecordNotFound
	}
	delete(m.records, id)
	return nil
}

func ownedHabit(owner uuid.UUID, title string) habit.Habit {
	return habit.Habit{ID: uuid.New(), UserID: &owner, Title: title}
}

func sharedHabit(title string) habit.Habit {
	return habit.Habit{ID: uuid.New(), Title: title}
}

func TestHabits_CreateHabit_OwnerIsCaller(t *testing.T) {
	repo := newMockHabitRepo()
	uc := NewHabitUsecase(repo, newMockTrackingRepo())

	caller := uuid.New()
	h, err := uc.CreateHabit(context.Background(), caller, CreateHabitInput{Title: "Meditate"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if h.UserID == nil || *h.UserID != caller {
		t.Fatalf("expected owner %v, got %v", caller, h.UserID)
	}
}

func TestHabits_CreateHabit_EmptyTitle(t *testing.T) {
	uc := NewHabitUsecase(newMockHabitRepo(), newMockTrackingRepo())

	_, err := uc.CreateHabit(context.Background(), uuid.New(), CreateHabitInput{Title: "   "})
	var ferrs FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
}

func TestHabits_ListHabits_IncludesShared(t *testing.T) {
	caller := uuid.New()
	mine := ownedHabit(caller, "Mine")
	foreign := ownedHabit(uuid.New(), "Foreign")
	shared := sharedHabit("Shared")
	uc := NewHabitUsecase(newMockHabitRepo(mine, foreign, shared), newMockTrackingRepo())

	habits, err := uc.ListHabits(context.Background(), caller)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(habits) != 2 {
		t.Fatalf("expected 2 visible habits, got %d", len(habits))
	}
	for _, h := range habits {
		if h.ID == foreign.ID {
			t.Fatalf("foreign habit leaked into listing")
		}
	}
}

func TestHabits_Track_ForeignHabitRejected(t *testing.T) {
	foreign := ownedHabit(uuid.New(), "Foreign")
	uc := NewHabitUsecase(newMockHabitRepo(foreign), newMockTrackingRepo())

	_, err := uc.Track(context.Background(), uuid.New(), CreateTrackingInput{HabitID: foreign.ID})
	var ferrs FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := ferrs["habit"]; !ok {
		t.Fatalf("expected habit error, got %v", ferrs)
	}
}

func TestHabits_Track_SharedHabitAllowed(t *testing.T) {
	shared := sharedHabit("Shared")
	uc := NewHabitUsecase(newMockHabitRepo(shared), newMockTrackingRepo())

	caller := uuid.New()
	rec, err := uc.Track(context.Background(), caller, CreateTrackingInput{HabitID: shared.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rec.UserID != caller {
		t.Fatalf("record not scoped to caller")
	}
	if !rec.Completed {
		t.Fatalf("expected completed to default true")
	}
}

func TestHabits_Track_DuplicateDay(t *testing.T) {
	shared := sharedHabit("Shared")
	uc := NewHabitUsecase(newMockHabitRepo(shared), newMockTrackingRepo())

	caller := uuid.New()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if _, err := uc.Track(context.Background(), caller, CreateTrackingInput{HabitID: shared.ID, TrackDate: &day}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := uc.Track(context.Background(), caller, CreateTrackingInput{HabitID: shared.ID, TrackDate: &day})
	if !errors.Is(err, habit.ErrDuplicateTracking) {
		t.Fatalf("expected ErrDuplicateTracking, got %v", err)
	}
}

func TestHabits_UpdateHabit_SharedReadOnly(t *testing.T) {
	shared := sharedHabit("Shared")
	uc := NewHabitUsecase(newMockHabitRepo(shared), newMockTrackingRepo())

	title := "Renamed"
	err := uc.UpdateHabit(context.Background(), uuid.New(), shared.ID, habit.UpdateFields{Title: &title})
	if !errors.Is(err, habit.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for shared habit update, got %v", err)
	}
}

func TestHabits_DeleteTracking_ForeignHidden(t *testing.T) {
	shared := sharedHabit("Shared")
	tracking := newMockTrackingRepo()
	uc := NewHabitUsecase(newMockHabitRepo(shared), tracking)

	owner := uuid.New()
	rec, err := uc.Track(context.Background(), owner, CreateTrackingInput{HabitID: shared.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.DeleteTracking(context.Background(), uuid.New(), rec.ID); !errors.Is(err, habit.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if err := uc.DeleteTracking(context.Background(), owner, rec.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}
