package usecase

import (
	"context"
	"fmt"
	"strings"

	"prajnayana/internal/domain/content"
	"prajnayana/internal/domain/user"

	"github.com/google/uuid"
)

type CreateHubInput struct {
	Title       string
	Description string
	Category    content.Category
	Level       int
}

type CreateArticleInput struct {
	HubID   *uuid.UUID
	Title   string
	Summary string
	Content string
	Tags    string
}

type ContentUsecase interface {
	// ListHubs applies the level gate: only hubs whose level does not
	// exceed the caller's level are returned.
	ListHubs(ctx context.Context, callerID uuid.UUID, search string) ([]content.Hub, error)
	GetHub(ctx context.Context, callerID, hubID uuid.UUID) (content.Hub, error)
	CreateHub(ctx context.Context, in CreateHubInput) (content.Hub, error)
	UpdateHub(ctx context.Context, hubID uuid.UUID, fields content.HubUpdateFields) error
	DeleteHub(ctx context.Context, hubID uuid.UUID) error

	ListArticles(ctx context.Context, hubID *uuid.UUID, search string) ([]content.Article, error)
	GetArticle(ctx context.Context, articleID uuid.UUID) (content.Article, error)
	CreateArticle(ctx context.Context, in CreateArticleInput) (content.Article, error)
	UpdateArticle(ctx context.Context, articleID uuid.UUID, fields content.ArticleUpdateFields) error
	DeleteArticle(ctx context.Context, articleID uuid.UUID) error
}

type Content struct {
	hubs     content.HubRepository
	articles content.ArticleRepository
	users    user.Repository
	cache    ContentCache
}

func NewContentUsecase(hubs content.HubRepository, articles content.ArticleRepository, users user.Repository, cache ContentCache) *Content {
	return &Content{hubs: hubs, articles: articles, users: users, cache: cache}
}

func (c *Content) ListHubs(ctx context.Context, callerID uuid.UUID, search string) ([]content.Hub, error) {
	caller, err := c.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	search = strings.TrimSpace(search)

	key := fmt.Sprintf("hubs:level:%d:q:%s", caller.Level, strings.ToLower(search))
	var cached []content.Hub
	if c.cache != nil {
		if hit, err := c.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	hubs, err := c.hubs.ListVisible(ctx, caller.Level, search)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		_ = c.cache.SetJSON(ctx, key, hubs, 0)
	}
	return hubs, nil
}

func (c *Content) GetHub(ctx context.Context, callerID, hubID uuid.UUID) (content.Hub, error) {
	caller, err := c.users.GetByID(ctx, callerID)
	if err != nil {
		return content.Hub{}, err
	}
	h, err := c.hubs.GetByID(ctx, hubID)
	if err != nil {
		return content.Hub{}, err
	}
	// A hub above the caller's level stays invisible, not forbidden.
	if h.Level > caller.Level {
		return content.Hub{}, content.ErrHubNotFound
	}
	return h, nil
}

func (c *Content) CreateHub(ctx context.Context, in CreateHubInput) (content.Hub, error) {
	if !in.Category.Valid() {
		return content.Hub{}, FieldErrors{"category": "Invalid category"}
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return content.Hub{}, FieldErrors{"title": "Title is required"}
	}
	level := in.Level
	if level < 1 {
		level = 1
	}

	h := content.Hub{
		ID:          uuid.New(),
		Title:       title,
		Description: in.Description,
		Category:    in.Category,
		Level:       level,
	}
	if err := c.hubs.Create(ctx, h); err != nil {
		return content.Hub{}, err
	}
	c.invalidateHubs(ctx)
	return h, nil
}

func (c *Content) UpdateHub(ctx context.Context, hubID uuid.UUID, fields content.HubUpdateFields) error {
	if fields.Category != nil && !fields.Category.Valid() {
		return FieldErrors{"category": "Invalid category"}
	}
	if err := c.hubs.Update(ctx, hubID, fields); err != nil {
		return err
	}
	c.invalidateHubs(ctx)
	return nil
}

func (c *Content) DeleteHub(ctx context.Context, hubID uuid.UUID) error {
	if err := c.hubs.Delete(ctx, hubID); err != nil {
		return err
	}
	// Articles keep existing with their hub link cleared, so both caches
	// go stale.
	c.invalidateHubs(ctx)
	c.invalidateArticles(ctx)
	return nil
}

func (c *Content) ListArticles(ctx context.Context, hubID *uuid.UUID, search string) ([]content.Article, error) {
	search = strings.TrimSpace(search)

	hubKey := "all"
	if hubID != nil {
		hubKey = hubID.String()
	}
	key := fmt.Sprintf("articles:hub:%s:q:%s", hubKey, strings.ToLower(search))
	var cached []content.Article
	if c.cache != nil {
		if hit, err := c.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	articles, err := c.articles.List(ctx, hubID, search)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		_ = c.cache.SetJSON(ctx, key, articles, 0)
	}
	return articles, nil
}

func (c *Content) GetArticle(ctx context.Context, articleID uuid.UUID) (content.Article, error) {
	return c.articles.GetByID(ctx, articleID)
}

func (c *Content) CreateArticle(ctx context.Context, in CreateArticleInput) (content.Article, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return content.Article{}, FieldErrors{"title": "Title is required"}
	}
	if in.HubID != nil {
		if _, err := c.hubs.GetByID(ctx, *in.HubID); err != nil {
			return content.Article{}, err
		}
	}

	a := content.Article{
		ID:      uuid.New(),
		HubID:   in.HubID,
		Title:   title,
		Summary: in.Summary,
		Content: in.Content,
		Tags:    in.Tags,
	}
	if err := c.articles.Create(ctx, a); err != nil {
		return content.Article{}, err
	}
	c.invalidateArticles(ctx)
	return a, nil
}

func (c *Content) UpdateArticle(ctx context.Context, articleID uuid.UUID, fields content.ArticleUpdateFields) error {
	if fields.HubID != nil && !fields.ClearHub {
		if _, err := c.hubs.GetByID(ctx, *fields.HubID); err != nil {
			return err
		}
	}
	if err := c.articles.Update(ctx, articleID, fields); err != nil {
		return err
	}
	c.invalidateArticles(ctx)
	return nil
}

func (c *Content) DeleteArticle(ctx context.Context, articleID uuid.UUID) error {
	if err := c.articles.Delete(ctx, articleID); err != nil {
		return err
	}
	c.invalidateArticles(ctx)
	return nil
}

func (c *Content) invalidateHubs(ctx context.Context) {
	if c.cache != nil {
		_ = c.cache.DeleteByPattern(ctx, "hubs:*")
	}
}

func (c *Content) invalidateArticles(ctx context.Context) {
	if c.cache != nil {
		_ = c.cache.DeleteByPattern(ctx, "articles:*")
	}
}
