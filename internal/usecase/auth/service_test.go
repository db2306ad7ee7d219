package auth

import (
	"context"
	"errors"
	"testing"

	"prajnayana/internal/domain/user"
	"prajnayana/internal/pkg/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
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

func (m *mockUserRepo) List(context.Context) ([]user.User, error) { return nil, nil }

func (m *mockUserRepo) Update(context.Context, uuid.UUID, user.UpdateFields) error { return nil }

func validInput() RegisterInput {
	return RegisterInput{
		Username:        "newuser",
		Email:           "NewUser@Example.com",
		Password:        "s3cret pass",
		ConfirmPassword: "s3cret pass",
		FirstName:       "New",
		LastName:        "User",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked in result")
	}
	if u.Email != "newuser@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.Level != 1 {
		t.Fatalf("expected level 1, got %d", u.Level)
	}

	stored, err := repo.GetByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	svc := NewService(newMockUserRepo())

	in := validInput()
	in.ConfirmPassword = "different"
	_, err := svc.Register(context.Background(), in)

	var ferrs validate.FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if ferrs["password"] != "Passwords do not match" {
		t.Fatalf("unexpected message: %q", ferrs["password"])
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := NewService(newMockUserRepo())

	for _, pw := range []string{"short", "12345678"} {
		in := validInput()
		in.Password = pw
		in.ConfirmPassword = pw
		_, err := svc.Register(context.Background(), in)

		var ferrs validate.FieldErrors
		if !errors.As(err, &ferrs) {
			t.Fatalf("pw %q: expected FieldErrors, got %v", pw, err)
		}
		if _, ok := ferrs["password"]; !ok {
			t.Fatalf("pw %q: expected password error, got %v", pw, ferrs)
		}
	}
}

func TestRegister_YearOfBirthRange(t *testing.T) {
	svc := NewService(newMockUserRepo())

	year := 1850
	in := validInput()
	in.YearOfBirth = &year
	_, err := svc.Register(context.Background(), in)

	var ferrs validate.FieldErrors
	if !errors.As(err, &ferrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if _, ok := ferrs["year_of_birth"]; !ok {
		t.Fatalf("expected year_of_birth error, got %v", ferrs)
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	existing := user.User{ID: uuid.New(), Username: "newuser", Email: "other@example.com"}
	svc := NewService(newMockUserRepo(existing))

	_, err := svc.Register(context.Background(), validInput())
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right password"), bcrypt.MinCost)
	existing := user.User{ID: uuid.New(), Username: "someone", PasswordHash: string(hash)}
	svc := NewService(newMockUserRepo(existing))

	cases := []LoginInput{
		{Username: "someone", Password: "wrong password"},
		{Username: "nobody", Password: "right password"},
		{Username: "", Password: ""},
	}
	for _, in := range cases {
		if _, err := svc.Login(context.Background(), in); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("login %q: expected ErrInvalidCredentials, got %v", in.Username, err)
		}
	}
}

func TestLogin_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right password"), bcrypt.MinCost)
	existing := user.User{ID: uuid.New(), Username: "someone", PasswordHash: string(hash)}
	svc := NewService(newMockUserRepo(existing))

	u, err := svc.Login(context.Background(), LoginInput{Username: "someone", Password: "right password"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.ID != existing.ID {
		t.Fatalf("wrong user returned")
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
}
