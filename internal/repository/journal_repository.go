package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"prajnayana/internal/database"
	"prajnayana/internal/domain/journal"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresJournalRepository struct {
	db database.DB
}

func NewPostgresJournalRepository(db database.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

const journalColumns = `id, user_id, entry_date, mood, content, created_at`

func (r *PostgresJournalRepository) Create(ctx context.Context, e journal.Entry) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO journal_entries (id, user_id, entry_date, mood, content)
VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.UserID, e.EntryDate, string(e.Mood), e.Content,
	)
	return err
}

func (r *PostgresJournalRepository) GetByID(ctx context.Context, id uuid.UUID) (journal.Entry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+journalColumns+` FROM journal_entries WHERE id = $1`, id)
	return scanJournalEntry(row)
}

func (r *PostgresJournalRepository) ListByUser(ctx context.Context, userID uuid.UUID, date *time.Time) ([]journal.Entry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE user_id = $1`
	args := []any{userID}
	if date != nil {
		query += ` AND entry_date = $2`
		args = append(args, *date)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]journal.Entry, 0)
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJournalRepository) Update(ctx context.Context, id uuid.UUID, fields journal.UpdateFields) error {
	set := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if fields.EntryDate != nil {
		args = append(args, *fields.EntryDate)
		set = append(set, fmt.Sprintf("entry_date = $%d", len(args)))
	}
	if fields.Mood != nil {
		args = append(args, string(*fields.Mood))
		set = append(set, fmt.Sprintf("mood = $%d", len(args)))
	}
	if fields.Content != nil {
		args = append(args, *fields.Content)
		set = append(set, fmt.Sprintf("content = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	affected, err := r.db.Exec(ctx,
		fmt.Sprintf(`UPDATE journal_entries SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args)),
		args...,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return journal.ErrNotFound
	}
	return nil
}

func (r *PostgresJournalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM journal_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return journal.ErrNotFound
	}
	return nil
}

func scanJournalEntry(row database.Row) (journal.Entry, error) {
	var e journal.Entry
	var mood string
	if err := row.Scan(&e.ID, &e.UserID, &e.EntryDate, &mood, &e.Content, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return journal.Entry{}, journal.ErrNotFound
		}
		return journal.Entry{}, err
	}
	e.Mood = journal.Mood(mood)
	return e, nil
}
