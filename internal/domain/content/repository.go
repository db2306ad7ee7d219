package content

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrHubNotFound     = errors.New("knowledge hub not found")
	ErrArticleNotFound = errors.New("article not found")
)

type HubUpdateFields struct {
	Title       *string
	Description *string
	Category    *Category
	Level       *int
}

type ArticleUpdateFields struct {
	HubID    *uuid.UUID
	ClearHub bool
	Title    *string
	Summary  *string
	Content  *string
	Tags     *string
}

type HubRepository interface {
	Create(ctx context.Context, h Hub) error
	GetByID(ctx context.Context, id uuid.UUID) (Hub, error)
	// ListVisible returns hubs with level <= maxLevel, optionally filtered
	// by a case-insensitive title substring.
	ListVisible(ctx context.Context, maxLevel int, search string) ([]Hub, error)
	Update(ctx context.Context, id uuid.UUID, fields HubUpdateFields) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ArticleRepository interface {
	Create(ctx context.Context, a Article) error
	GetByID(ctx context.Context, id uuid.UUID) (Article, error)
	// List filters by parent hub when hubID is non-nil; search is a
	// case-insensitive substring matched against title, summary, content
	// and tags, OR-combined.
	List(ctx context.Context, hubID *uuid.UUID, search string) ([]Article, error)
	Update(ctx context.Context, id uuid.UUID, fields ArticleUpdateFields) error
	Delete(ctx context.Context, id uuid.UUID) error
}
