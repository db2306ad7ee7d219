package usecase

import (
	"context"
	"errors"
	"testing"

	"prajnayana/internal/domain/user"

	"github.com/google/uuid"
)

func TestUsers_GetProfile_SelfOnly(t *testing.T) {
	me := user.User{ID: uuid.New(), Username: "me", Email: "me@example.com", PasswordHash: "hash", Level: 1}
	uc := NewUserUsecase(newMockUserRepo(me))

	got, err := uc.GetProfile(context.Background(), me.ID, me.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}

	_, err = uc.GetProfile(context.Background(), uuid.New(), me.ID)
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign profile, got %v", err)
	}
}

func TestUsers_UpdateProfile_NormalizesEmail(t *testing.T) {
	me := user.User{ID: uuid.New(), Username: "me", Email: "me@example.com"}
	repo := newMockUserRepo(me)
	uc := NewUserUsecase(repo)

	email := "  New@Example.COM "
	if err := uc.UpdateProfile(context.Background(), me.ID, me.ID, UpdateProfileInput{Email: &email}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	updated, _ := repo.GetByID(context.Background(), me.ID)
	if updated.Email != "new@example.com" {
		t.Fatalf("expected normalized email, got %q", updated.Email)
	}
}

func TestUsers_UpdateProfile_InvalidEmail(t *testing.T) {
	me := user.User{ID: uuid.New(), Username: "me"}
	uc := NewUserUsecase(newMockUserRepo(me))

	email := "not-an-email"
	err := uc.UpdateProfile(context.Background(), me.ID, me.ID, UpdateProfileInput{Email: &email})
	var ferrs FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
}

func TestUsers_UpdateProfile_EmptyPayload(t *testing.T) {
	me := user.User{ID: uuid.New(), Username: "me"}
	uc := NewUserUsecase(newMockUserRepo(me))

	err := uc.UpdateProfile(context.Background(), me.ID, me.ID, UpdateProfileInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUsers_ListUsers_StripsHashes(t *testing.T) {
	a := user.User{ID: uuid.New(), Username: "a", Email: "a@example.com", PasswordHash: "h1"}
	b := user.User{ID: uuid.New(), Username: "b", Email: "b@example.com", PasswordHash: "h2"}
	uc := NewUserUsecase(newMockUserRepo(a, b))

	users, err := uc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	for _, u := range users {
		if u.PasswordHash != "" {
			t.Fatalf("password hash leaked for %s", u.Username)
		}
	}
}
