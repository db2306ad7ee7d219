package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"prajnayana/internal/domain/content"
	"prajnayana/internal/domain/user"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	users map[uuid.UUID]user.User
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return user.ErrUsernameTaken
		}
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) List(context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepo) Update(_ context.Context, id uuid.UUID, fields user.UpdateFields) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	if fields.Email != nil {
		u.Email = *fields.Email
	}
	if fields.FirstName != nil {
		u.FirstName = *fields.FirstName
	}
	if fields.LastName != nil {
		u.LastName = *fields.LastName
	}
	if fields.Gender != nil {
		u.Gender = *fields.Gender
	}
	if fields.YearOfBirth != nil {
		u.YearOfBirth = fields.YearOfBirth
	}
	m.users[id] = u
	return nil
}

type mockHubRepo struct {
	hubs map[uuid.UUID]content.Hub
}

func newMockHubRepo(hubs ...content.Hub) *mockHubRepo {
	m := &mockHubRepo{hubs: map[uuid.UUID]content.Hub{}}
	for _, h := range hubs {
		m.hubs[h.ID] = h
	}
	return m
}

func (m *mockHubRepo) Create(_ context.Context, h content.Hub) error {
	m.hubs[h.ID] = h
	return nil
}

func (m *mockHubRepo) GetByID(_ context.Context, id uuid.UUID) (content.Hub, error) {
	h, ok := m.hubs[id]
	if !ok {
		return content.Hub{}, content.ErrHubNotFound
	}
	return h, nil
}

func (m *mockHubRepo) ListVisible(_ context.Context, maxLevel int, _ string) ([]content.Hub, error) {
	var out []content.Hub
	for _, h := range m.hubs {
		if h.Level <= maxLevel {
			out = append(out, h)
		}
	}
	return out, nil
}

func (m *mockHubRepo) Update(_ context.Context, id uuid.UUID, fields content.HubUpdateFields) error {
	h, ok := m.hubs[id]
	if !ok {
		return content.ErrHubNotFound
	}
	if fields.Title != nil {
		h.Title = *fields.Title
	}
	if fields.Category != nil {
		h.Category = *fields.Category
	}
	if fields.Level != nil {
		h.Level = *fields.Level
	}
	m.hubs[id] = h
	return nil
}

func (m *mockHubRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.hubs[id]; !ok {
		return content.ErrHubNotFound
	}
	delete(m.hubs, id)
	return nil
}

type mockArticleRepo struct {
	articles map[uuid.UUID]content.Article
}

func newMockArticleRepo() *mockArticleRepo {
	return &mockArticleRepo{articles: map[uuid.UUID]content.Article{}}
}

func (m *mockArticleRepo) Create(_ context.Context, a content.Article) error {
	m.articles[a.ID] = a
	return nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id uuid.UUID) (content.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return content.Article{}, content.ErrArticleNotFound
	}
	return a, nil
}

func (m *mockArticleRepo) List(_ context.Context, hubID *uuid.UUID, _ string) ([]content.Article, error) {
	var out []content.Article
	for _, a := range m.articles {
		if hubID != nil && (a.HubID == nil || *a.HubID != *hubID) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *mockArticleRepo) Update(_ context.Context, id uuid.UUID, fields content.ArticleUpdateFields) error {
	a, ok := m.articles[id]
	if !ok {
		return content.ErrArticleNotFound
	}
	if fields.ClearHub {
		a.HubID = nil
	} else if fields.HubID != nil {
		a.HubID = fields.HubID
	}
	if fields.Title != nil {
		a.Title = *fields.Title
	}
	m.articles[id] = a
	return nil
}

func (m *mockArticleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.articles[id]; !ok {
		return content.ErrArticleNotFound
	}
	delete(m.articles, id)
	return nil
}

// recordingCache stores entries in-process and counts hits so the caching
// path is observable.
type recordingCache struct {
	store map[string][]byte
	hits  int
	sets  int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{store: map[string][]byte{}}
}

func (c *recordingCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	c.hits++
	return true, nil
}

func (c *recordingCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = b
	c.sets++
	return nil
}

func (c *recordingCache) DeleteByPattern(_ context.Context, pattern string) error {
	// Patterns in this codebase are prefix globs ("hubs:*", "articles:*").
	prefix := pattern
	if n := len(pattern); n > 0 && pattern[n-1] == '*' {
		prefix = pattern[:n-1]
	}
	for k := range c.store {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.store, k)
		}
	}
	return nil
}

func levelOneUser() user.User {
	return user.User{ID: uuid.New(), Username: "reader", Email: "reader@example.com", Level: 1}
}

func TestContent_ListHubs_LevelGate(t *testing.T) {
	reader := levelOneUser()
	low := content.Hub{ID: uuid.New(), Title: "Basics", Category: content.CategoryMindfulness, Level: 1}
	high := content.Hub{ID: uuid.New(), Title: "Advanced", Category: content.CategoryPhilosophy, Level: 3}

	uc := NewContentUsecase(newMockHubRepo(low, high), newMockArticleRepo(), newMockUserRepo(reader), nil)

	hubs, err := uc.ListHubs(context.Background(), reader.ID, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(hubs) != 1 || hubs[0].ID != low.ID {
		t.Fatalf("expected only the level-1 hub, got %v", hubs)
	}
}

func TestContent_GetHub_AboveLevelHidden(t *testing.T) {
	reader := levelOneUser()
	high := content.Hub{ID: uuid.New(), Title: "Advanced", Category: content.CategoryPhilosophy, Level: 3}

	uc := NewContentUsecase(newMockHubRepo(high), newMockArticleRepo(), newMockUserRepo(reader), nil)

	_, err := uc.GetHub(context.Background(), reader.ID, high.ID)
	if !errors.Is(err, content.ErrHubNotFound) {
		t.Fatalf("expected ErrHubNotFound, got %v", err)
	}
}

func TestContent_ListHubs_CacheRoundTrip(t *testing.T) {
	reader := levelOneUser()
	hub := content.Hub{ID: uuid.New(), Title: "Basics", Category: content.CategoryMindfulness, Level: 1}
	cache := newRecordingCache()

	uc := NewContentUsecase(newMockHubRepo(hub), newMockArticleRepo(), newMockUserRepo(reader), cache)

	if _, err := uc.ListHubs(context.Background(), reader.ID, ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected 1 cache set, got %d", cache.sets)
	}
	if _, err := uc.ListHubs(context.Background(), reader.ID, ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected 1 cache hit, got %d", cache.hits)
	}
}

func TestContent_CreateHub_InvalidatesCache(t *testing.T) {
	reader := levelOneUser()
	cache := newRecordingCache()
	uc := NewContentUsecase(newMockHubRepo(), newMockArticleRepo(), newMockUserRepo(reader), cache)

	if _, err := uc.ListHubs(context.Background(), reader.ID, ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := uc.CreateHub(context.Background(), CreateHubInput{
		Title:    "New Hub",
		Category: content.CategoryHealth,
		Level:    1,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.store) != 0 {
		t.Fatalf("expected hub cache invalidated, still has %d keys", len(cache.store))
	}
}

func TestContent_CreateHub_InvalidCategory(t *testing.T) {
	uc := NewContentUsecase(newMockHubRepo(), newMockArticleRepo(), newMockUserRepo(), nil)

	_, err := uc.CreateHub(context.Background(), CreateHubInput{Title: "X", Category: "Sports"})
	var ferrs FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := ferrs["category"]; !ok {
		t.Fatalf("expected category error, got %v", ferrs)
	}
}

func TestContent_CreateArticle_UnknownHub(t *testing.T) {
	uc := NewContentUsecase(newMockHubRepo(), newMockArticleRepo(), newMockUserRepo(), nil)

	hubID := uuid.New()
	_, err := uc.CreateArticle(context.Background(), CreateArticleInput{HubID: &hubID, Title: "Orphan"})
	if !errors.Is(err, content.ErrHubNotFound) {
		t.Fatalf("expected ErrHubNotFound, got %v", err)
	}
}

func TestContent_ListArticles_FilterByHub(t *testing.T) {
	hub := content.Hub{ID: uuid.New(), Title: "Basics", Category: content.CategoryMindfulness, Level: 1}
	articles := newMockArticleRepo()
	uc := NewContentUsecase(newMockHubRepo(hub), articles, newMockUserRepo(), nil)

	if _, err := uc.CreateArticle(context.Background(), CreateArticleInput{HubID: &hub.ID, Title: "In hub"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.CreateArticle(context.Background(), CreateArticleInput{Title: "Unfiled"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := uc.ListArticles(context.Background(), &hub.ID, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Title != "In hub" {
		t.Fatalf("expected only the hub's article, got %v", got)
	}
}
