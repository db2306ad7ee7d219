package auth

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"prajnayana/internal/domain/user"
	"prajnayana/internal/pkg/validate"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInternal           = errors.New("internal error")
)

type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Gender          string
	YearOfBirth     *int
}

type LoginInput struct {
	Username string
	Password string
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	if ferrs := validateRegister(in); len(ferrs) > 0 {
		return user.User{}, ferrs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Username:     strings.TrimSpace(in.Username),
		Email:        normalizeEmail(in.Email),
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Gender:       strings.TrimSpace(in.Gender),
		YearOfBirth:  in.YearOfBirth,
		Level:        1,
	}

	if err := s.users.Create(ctx, u); err != nil {
		switch {
		case errors.Is(err, user.ErrUsernameTaken):
			return user.User{}, ErrUsernameTaken
		case errors.Is(err, user.ErrEmailTaken):
			return user.User{}, ErrEmailTaken
		default:
			return user.User{}, ErrInternal
		}
	}

	return sanitizeUser(u), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

func validateRegister(in RegisterInput) validate.FieldErrors {
	ferrs := validate.FieldErrors{}

	if strings.TrimSpace(in.Username) == "" {
		ferrs["username"] = "Username is required"
	}

	email := normalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		ferrs["email"] = "A valid email is required"
	}

	if in.Password != in.ConfirmPassword {
		ferrs["password"] = "Passwords do not match"
	} else if msg := passwordPolicyViolation(in.Password); msg != "" {
		ferrs["password"] = msg
	}

	if in.YearOfBirth != nil {
		year := *in.YearOfBirth
		if year < 1900 || year > time.Now().UTC().Year() {
			ferrs["year_of_birth"] = "Year of birth is out of range"
		}
	}

	if len(ferrs) == 0 {
		return nil
	}
	return ferrs
}

// passwordPolicyViolation returns a human-readable reason when pw fails the
// strength policy, or "" when it passes.
func passwordPolicyViolation(pw string) string {
	if len(pw) < 8 {
		return "Password must be at least 8 characters"
	}
	allDigits := true
	for _, r := range pw {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return "Password cannot be entirely numeric"
	}
	return ""
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
