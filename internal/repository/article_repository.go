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

type PostgresArticleRepository struct {
	db database.DB
}

func NewPostgresArticleRepository(db database.DB) *PostgresArticleRepository {
	return &PostgresArticleRepository{db: db}
}

const articleColumns = `id, hub_id, title, summary, content, tags, created_at`

func (r *PostgresArticleRepository) Create(ctx context.Context, a content.Article) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO articles (id, hub_id, title, summary, content, tags)
VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.HubID, a.Title, a.Summary, a.Content, a.Tags,
	)
	return err
}

func (r *PostgresArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (content.Article, error) {
	row := r.db.QueryRow(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	return scanArticle(row)
}

func (r *PostgresArticleRepository) List(ctx context.Context, hubID *uuid.UUID, search string) ([]content.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	where := make([]string, 0, 2)
	args := make([]any, 0, 2)

	if hubID != nil {
		args = append(args, *hubID)
		where = append(where, fmt.Sprintf("hub_id = $%d", len(args)))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(title ILIKE $%d OR summary ILIKE $%d OR content ILIKE $%d OR tags ILIKE $%d)",
			n, n, n, n,
		))
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]content.Article, 0)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresArticleRepository) Update(ctx context.Context, id uuid.UUID, fields content.ArticleUpdateFields) error {
	set := make([]string, 0, 5)
	args := make([]any, 0, 6)

	if fields.ClearHub {
		set = append(set, "hub_id = NULL")
	} else if fields.HubID != nil {
		args = append(args, *fields.HubID)
		set = append(set, fmt.Sprintf("hub_id = $%d", len(args)))
	}
	if fields.Title != nil {
		args = append(args, *fields.Title)
		set = append(set, fmt.Sprintf("title = $%d", len(args)))
	}
	if fields.Summary != nil {
		args = append(args, *fields.Summary)
		set = append(set, fmt.Sprintf("summary = $%d", len(args)))
	}
	if fields.Content != nil {
		args = append(args, *fields.Content)
		set = append(set, fmt.Sprintf("content = $%d", len(args)))
	}
	if fields.Tags != nil {
		args = append(args, *fields.Tags)
		set = append(set, fmt.Sprintf("tags = $%d", len(args)))
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	affected, err := r.db.Exec(ctx,
		fmt.Sprintf(`UPDATE articles SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args)),
		args...,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return content.ErrArticleNotFound
	}
	return nil
}

func (r *PostgresArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return content.ErrArticleNotFound
	}
	return nil
}

func scanArticle(row database.Row) (content.Article, error) {
	var a content.Article
	if err := row.Scan(&a.ID, &a.HubID, &a.Title, &a.Summary, &a.Content, &a.Tags, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return content.Article{}, content.ErrArticleNotFound
		}
		return content.Article{}, err
	}
	return a, nil
}
