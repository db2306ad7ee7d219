package repository

import (
	"context"
	"errors"

	"prajnayana/internal/database"
	"prajnayana/internal/domain/questionnaire"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresQuestionRepository struct {
	db database.DB
}

func NewPostgresQuestionRepository(db database.DB) *PostgresQuestionRepository {
	return &PostgresQuestionRepository{db: db}
}

func (r *PostgresQuestionRepository) List(ctx context.Context) ([]questionnaire.Question, error) {
	rows, err := r.db.Query(ctx, `SELECT id, text, created_at FROM discovery_questions ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]questionnaire.Question, 0)
	for rows.Next() {
		var q questionnaire.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresQuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (questionnaire.Question, error) {
	var q questionnaire.Question
	err := r.db.QueryRow(ctx, `SELECT id, text, created_at FROM discovery_questions WHERE id = $1`, id).
		Scan(&q.ID, &q.Text, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return questionnaire.Question{}, questionnaire.ErrQuestionNotFound
		}
		return questionnaire.Question{}, err
	}
	return q, nil
}

func (r *PostgresQuestionRepository) ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id FROM discovery_questions WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
