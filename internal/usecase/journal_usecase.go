package usecase

import (
	"context"
	"time"

	"prajnayana/internal/domain/journal"

	"github.com/google/uuid"
)

type CreateJournalInput struct {
	EntryDate *time.Time
	Mood      journal.Mood
	Content   string
}

type JournalUsecase interface {
	Create(ctx context.Context, callerID uuid.UUID, in CreateJournalInput) (journal.Entry, error)
	List(ctx context.Context, callerID uuid.UUID, date *time.Time) ([]journal.Entry, error)
	Get(ctx context.Context, callerID, entryID uuid.UUID) (journal.Entry, error)
	Update(ctx context.Context, callerID, entryID uuid.UUID, fields journal.UpdateFields) error
	Delete(ctx context.Context, callerID, entryID uuid.UUID) error
}

type Journal struct {
	entries journal.Repository

	now func() time.Time
}

func NewJournalUsecase(entries journal.Repository) *Journal {
	return &Journal{entries: entries, now: time.Now}
}

func (j *Journal) Create(ctx context.Context, callerID uuid.UUID, in CreateJournalInput) (journal.Entry, error) {
	if !in.Mood.Valid() {
		return journal.Entry{}, FieldErrors{"mood": "Invalid mood"}
	}

	day := dateOnly(j.now())
	if in.EntryDate != nil {
		day = dateOnly(*in.EntryDate)
	}

	e := journal.Entry{
		ID:        uuid.New(),
		UserID:    callerID,
		EntryDate: day,
		Mood:      in.Mood,
		Content:   in.Content,
	}
	if err := j.entries.Create(ctx, e); err != nil {
		return journal.Entry{}, err
	}
	return e, nil
}

func (j *Journal) List(ctx context.Context, callerID uuid.UUID, date *time.Time) ([]journal.Entry, error) {
	return j.entries.ListByUser(ctx, callerID, date)
}

func (j *Journal) Get(ctx context.Context, callerID, entryID uuid.UUID) (journal.Entry, error) {
	return j.ownedEntry(ctx, callerID, entryID)
}

func (j *Journal) Update(ctx context.Context, callerID, entryID uuid.UUID, fields journal.UpdateFields) error {
	if _, err := j.ownedEntry(ctx, callerID, entryID); err != nil {
		return err
	}
	if fields.Mood != nil && !fields.Mood.Valid() {
		return FieldErrors{"mood": "Invalid mood"}
	}
	if fields.EntryDate != nil {
		day := dateOnly(*fields.EntryDate)
		fields.EntryDate = &day
	}
	return j.entries.Update(ctx, entryID, fields)
}

func (j *Journal) Delete(ctx context.Context, callerID, entryID uuid.UUID) error {
	if _, err := j.ownedEntry(ctx, callerID, entryID); err != nil {
		return err
	}
	return j.entries.Delete(ctx, entryID)
}

func (j *Journal) ownedEntry(ctx context.Context, callerID, entryID uuid.UUID) (journal.Entry, error) {
	e, err := j.entries.GetByID(ctx, entryID)
	if err != nil {
		return journal.Entry{}, err
	}
	if e.UserID != callerID {
		return journal.Entry{}, journal.ErrNotFound
	}
	return e, nil
}
