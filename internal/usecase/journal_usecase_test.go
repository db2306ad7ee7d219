package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"prajnayana/internal/domain/journal"

	"github.com/google/uuid"
)

type mockJournalRepo struct {
	entries map[uuid.UUID]journal.Entry
}

func newMockJournalRepo() *mockJournalRepo {
	return &mockJournalRepo{entries: map[uuid.UUID]journal.Entry{}}
}

func (m *mockJournalRepo) Create(_ context.Context, e journal.Entry) error {
	m.entries[e.ID] = e
	return nil
}

func (m *mockJournalRepo) GetByID(_ context.Context, id uuid.UUID) (journal.Entry, error) {
	e, ok := m.entries[id]
	if !ok {
		return journal.Entry{}, journal.ErrNotFound
	}
	return e, nil
}

func (m *mockJournalRepo) ListByUser(_ context.Context, userID uuid.UUID, date *time.Time) ([]journal.Entry, error) {
	var out []journal.Entry
	for _, e := range m.entries {
		if e.UserID != userID {
			continue
		}
		if date != nil && !e.EntryDate.Equal(*date) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockJournalRepo) Update(_ context.Context, id uuid.UUID, fields journal.UpdateFields) error {
	e, ok := m.entries[id]
	if !ok {
		return journal.ErrNotFound
	}
	if fields.EntryDate != nil {
		e.EntryDate = *fields.EntryDate
	}
	if fields.Mood != nil {
		e.Mood = *fields.Mood
	}
	if fields.Content != nil {
		e.Content = *fields.Content
	}
	m.entries[id] = e
	return nil
}

func (m *mockJournalRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.entries[id]; !ok {
		return journal.ErrNotFound
	}
	delete(m.entries, id)
	return nil
}

func TestJournal_Create_InvalidMood(t *testing.T) {
	uc := NewJournalUsecase(newMockJournalRepo())

	_, err := uc.Create(context.Background(), uuid.New(), CreateJournalInput{Mood: "Furious"})
	var ferrs FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := ferrs["mood"]; !ok {
		t.Fatalf("expected mood error, got %v", ferrs)
	}
}

func TestJournal_Create_DefaultsToToday(t *testing.T) {
	uc := NewJournalUsecase(newMockJournalRepo())
	uc.now = fixedClock(time.Date(2025, 7, 2, 18, 30, 0, 0, time.UTC))

	caller := uuid.New()
	e, err := uc.Create(context.Background(), caller, CreateJournalInput{Mood: journal.MoodHappy, Content: "good day"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)
	if !e.EntryDate.Equal(want) {
		t.Fatalf("expected entry date %v, got %v", want, e.EntryDate)
	}
	if e.UserID != caller {
		t.Fatalf("entry not scoped to caller")
	}
}

func TestJournal_Get_ForeignHidden(t *testing.T) {
	uc := NewJournalUsecase(newMockJournalRepo())

	owner := uuid.New()
	e, err := uc.Create(context.Background(), owner, CreateJournalInput{Mood: journal.MoodNeutral})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.Get(context.Background(), uuid.New(), e.ID); !errors.Is(err, journal.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := uc.Get(context.Background(), owner, e.ID); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
}

func TestJournal_Update_InvalidMoodRejected(t *testing.T) {
	uc := NewJournalUsecase(newMockJournalRepo())

	owner := uuid.New()
	e, _ := uc.Create(context.Background(), owner, CreateJournalInput{Mood: journal.MoodSad})

	bad := journal.Mood("Grumpy")
	err := uc.Update(context.Background(), owner, e.ID, journal.UpdateFields{Mood: &bad})
	var ferrs FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
}

func TestJournal_List_DateFilter(t *testing.T) {
	uc := NewJournalUsecase(newMockJournalRepo())

	caller := uuid.New()
	d1 := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)
	if _, err := uc.Create(context.Background(), caller, CreateJournalInput{Mood: journal.MoodHappy, EntryDate: &d1}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Create(context.Background(), caller, CreateJournalInput{Mood: journal.MoodStressed, EntryDate: &d2}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	entries, err := uc.List(context.Background(), caller, &d1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Mood != journal.MoodHappy {
		t.Fatalf("wrong entry returned")
	}
}
