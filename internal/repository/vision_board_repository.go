package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prajnayana/internal/database"
	"prajnayana/internal/domain/visionboard"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresVisionBoardRepository struct {
	db database.DB
}

func NewPostgresVisionBoardRepository(db database.DB) *PostgresVisionBoardRepository {
	return &PostgresVisionBoardRepository{db: db}
}

const visionBoardColumns = `id, user_id, category, content, favorite, created_at`

func (r *PostgresVisionBoardRepository) Create(ctx context.Context, item visionboard.Item) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO vision_board_items (id, user_id, category, content, favorite)
VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.UserID, string(item.Category), item.Content, item.Favorite,
	)
	return err
}

func (r *PostgresVisionBoardRepository) GetByID(ctx context.Context, id uuid.UUID) (visionboard.Item, error) {
	row := r.db.QueryRow(ctx, `SELECT `+visionBoardColumns+` FROM vision_board_items WHERE id = $1`, id)
	return scanVisionBoardItem(row)
}

func (r *PostgresVisionBoardRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]visionboard.Item, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+visionBoardColumns+`
FROM vision_board_items
WHERE user_id = $1
ORDER BY favorite DESC, created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]visionboard.Item, 0)
	for rows.Next() {
		item, err := scanVisionBoardItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresVisionBoardRepository) Update(ctx context.Context, id uuid.UUID, fields visionboard.UpdateFields) error {
	set := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if fields.Category != nil {
		args = append(args, string(*fields.Category))
		set = append(set, fmt.Sprintf("category = $%d", len(args)))
	}
	if fields.Content != nil {
		args = append(args, *fields.Content)
		set = append(set, fmt.Sprintf("content = $%d", len(args)))
	}
	if fields.Favorite != nil {
		args = append(args, *fields.Favorite)
		set = append(set, fmt.Sprintf("favorite = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	affected, err := r.db.Exec(ctx,
		fmt.Sprintf(`UPDATE vision_board_items SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args)),
		args...,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return visionboard.ErrNotFound
	}
	return nil
}

func (r *PostgresVisionBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM vision_board_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return visionboard.ErrNotFound
	}
	return nil
}

func scanVisionBoardItem(row database.Row) (visionboard.Item, error) {
	var item visionboard.Item
	var category string
	if err := row.Scan(&item.ID, &item.UserID, &category, &item.Content, &item.Favorite, &item.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return visionboard.Item{}, visionboard.ErrNotFound
		}
		return visionboard.Item{}, err
	}
	item.Category = visionboard.Category(category)
	return item, nil
}
