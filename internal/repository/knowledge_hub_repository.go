package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prajnayana/internal/database"
	"prajnayana/internal/domain/content"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresHubRepository struct {
	db database.DB
}

func NewPostgresHubRepository(db database.DB) *PostgresHubRepository {
	return &PostgresHubRepository{db: db}
}

const hubColumns = `id, title, description, category, level, created_at`

func (r *PostgresHubRepository) Create(ctx context.Context, h content.Hub) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO knowledge_hubs (id, title, description, category, level)
VALUES ($1, $2, $3, $4, $5)`,
		h.ID, h.Title, h.Description, string(h.Category), h.Level,
	)
	return err
}

func (r *PostgresHubRepository) GetByID(ctx context.Context, id uuid.UUID) (content.Hub, error) {
	row := r.db.QueryRow(ctx, `SELECT `+hubColumns+` FROM knowledge_hubs WHERE id = $1`, id)
	return scanHub(row)
}

func (r *PostgresHubRepository) ListVisible(ctx context.Context, maxLevel int, search string) ([]content.Hub, error) {
	query := `SELECT ` + hubColumns + ` FROM knowledge_hubs WHERE level <= $1`
	args := []any{maxLevel}
	if search != "" {
		query += ` AND title ILIKE $2`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY level ASC, created_at ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]content.Hub, 0)
	for rows.Next() {
		h, err := scanHub(rows)
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

func (r *PostgresHubRepository) Update(ctx context.Context, id uuid.UUID, fields content.HubUpdateFields) error {
	set := make([]string, 0, 4)
	args := make([]any, 0, 5)

	if fields.Title != nil {
		args = append(args, *fields.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if fields.Description != nil {
		args = append(args, *fields.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if fields.Category != nil {
		args = append(args, string(*fields.Category))
		set = append(set, fmt.Sprintf("category = $%d", len(args)))
	}
	if fields.Level != nil {
		args = append(args, *fields.Level)
		set = append(set, fmt.Sprintf("level = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	affected, err := r.db.Exec(ctx,
		fmt.Sprintf(`UPDATE knowledge_hubs SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args)),
		args...,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return content.ErrHubNotFound
	}
	return nil
}

func (r *PostgresHubRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM knowledge_hubs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return content.ErrHubNotFound
	}
	return nil
}

func scanHub(row database.Row) (content.Hub, error) {
	var h content.Hub
	var category string
	if err := row.Scan(&h.ID, &h.Title, &h.Description, &category, &h.Level, &h.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return content.Hub{}, content.ErrHubNotFound
		}
		return content.Hub{}, err
	}
	h.Category = content.Category(category)
	return h, nil
}
