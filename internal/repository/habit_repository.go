package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prajnayana/internal/database"
	"prajnayana/internal/domain/habit"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresHabitRepository struct {
	db database.DB
}

func NewPostgresHabitRepository(db database.DB) *PostgresHabitRepository {
	return &PostgresHabitRepository{db: db}
}

func (r *PostgresHabitRepository) Create(ctx context.Context, h habit.Habit) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO habits (id, user_id, title, description) VALUES ($1, $2, $3, $4)`,
		h.ID, h.UserID, h.Title, h.Description,
	)
	return err
}

func (r *PostgresHabitRepository) GetByID(ctx context.Context, id uuid.UUID) (habit.Habit, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, description, created_at FROM habits WHERE id = $1`, id)
	return scanHabit(row)
}

func (r *PostgresHabitRepository) ListVisible(ctx context.Context, userID uuid.UUID) ([]habit.Habit, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, user_id, title, description, created_at
FROM habits
WHERE user_id = $1 OR user_id IS NULL
ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]habit.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresHabitRepository) Update(ctx context.Context, id uuid.UUID, fields habit.UpdateFields) error {
	set := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if fields.Title != nil {
		args = append(args, *fields.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if fields.Description != nil {
		args = append(args, *fields.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	affected, err := r.db.Exec(ctx,
		fmt.Sprintf(`UPDATE habits SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args)),
		args...,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return habit.ErrNotFound
	}
	return nil
}

func (r *PostgresHabitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return habit.ErrNotFound
	}
	return nil
}

func scanHabit(row database.Row) (habit.Habit, error) {
	var h habit.Habit
	if err := row.Scan(&h.ID, &h.UserID, &h.Title, &h.Description, &h.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return habit.Habit{}, habit.ErrNotFound
		}
		return habit.Habit{}, err
	}
	return h, nil
}
