package usecase

import (
	"context"
	"errors"
	"testing"

	"prajnayana/internal/domain/visionboard"

	"github.com/google/uuid"
)

type mockVisionBoardRepo struct {
	items map[uuid.UUID]visionboard.Item
}

func newMockVisionBoardRepo() *mockVisionBoardRepo {
	return &mockVisionBoardRepo{items: map[uuid.UUID]visionboard.Item{}}
}

func (m *mockVisionBoardRepo) Create(_ context.Context, item visionboard.Item) error {
	m.items[item.ID] = item
	return nil
}

func (m *mockVisionBoardRepo) GetByID(_ context.Context, id uuid.UUID) (visionboard.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return visionboard.Item{}, visionboard.ErrNotFound
	}
	return item, nil
}

func (m *mockVisionBoardRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]visionboard.Item, error) {
	var out []visionboard.Item
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockVisionBoardRepo) Update(_ context.Context, id uuid.UUID, fields visionboard.UpdateFields) error {
	item, ok := m.items[id]
	if !ok {
		return visionboard.ErrNotFound
	}
	if fields.Category != nil {
		item.Category = *fields.Category
	}
	if fields.Content != nil {
		item.Content = *fields.Content
	}
	if fields.Favorite != nil {
		item.Favorite = *fields.Favorite
	}
	m.items[id] = item
	return nil
}

func (m *mockVisionBoardRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return visionboard.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func TestVisionBoard_Create_InvalidCategory(t *testing.T) {
	uc := NewVisionBoardUsecase(newMockVisionBoardRepo())

	_, err := uc.Create(context.Background(), uuid.New(), CreateVisionBoardInput{
		Category: "Mantra",
		Content:  "something",
	})
	var ferrs FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := ferrs["category"]; !ok {
		t.Fatalf("expected category error, got %v", ferrs)
	}
}

func TestVisionBoard_Create_EmptyContent(t *testing.T) {
	uc := NewVisionBoardUsecase(newMockVisionBoardRepo())

	_, err := uc.Create(context.Background(), uuid.New(), CreateVisionBoardInput{
		Category: visionboard.CategoryGoal,
		Content:  "  ",
	})
	var ferrs FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := ferrs["content"]; !ok {
		t.Fatalf("expected content error, got %v", ferrs)
	}
}

func TestVisionBoard_Get_ForeignHidden(t *testing.T) {
	uc := NewVisionBoardUsecase(newMockVisionBoardRepo())

	owner := uuid.New()
	item, err := uc.Create(context.Background(), owner, CreateVisionBoardInput{
		Category: visionboard.CategoryQuote,
		Content:  "The obstacle is the way.",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.Get(context.Background(), uuid.New(), item.ID); !errors.Is(err, visionboard.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestVisionBoard_Update_FavoriteToggle(t *testing.T) {
	repo := newMockVisionBoardRepo()
	uc := NewVisionBoardUsecase(repo)

	owner := uuid.New()
	item, _ := uc.Create(context.Background(), owner, CreateVisionBoardInput{
		Category: visionboard.CategoryWin,
		Content:  "Shipped the release.",
	})

	fav := true
	if err := uc.Update(context.Background(), owner, item.ID, visionboard.UpdateFields{Favorite: &fav}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got, _ := uc.Get(context.Background(), owner, item.ID)
	if !got.Favorite {
		t.Fatalf("expected favorite to be set")
	}
}
