package usecase

import (
	"context"
	"strings"

	"prajnayana/internal/domain/user"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	Email       *string
	FirstName   *string
	LastName    *string
	Gender      *string
	YearOfBirth *int
}

type UserUsecase interface {
	// GetProfile returns the target user's record; a caller asking for a
	// record other than their own gets user.ErrNotFound.
	GetProfile(ctx context.Context, callerID, targetID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, callerID, targetID uuid.UUID, in UpdateProfileInput) error
	ListUsers(ctx context.Context) ([]user.User, error)
}

type Users struct {
	users user.Repository
}

func NewUserUsecase(users user.Repository) *Users {
	return &Users{users: users}
}

func (u *Users) GetProfile(ctx context.Context, callerID, targetID uuid.UUID) (user.User, error) {
	if callerID != targetID {
		return user.User{}, user.ErrNotFound
	}
	usr, err := u.users.GetByID(ctx, targetID)
	if err != nil {
		return user.User{}, err
	}
	usr.PasswordHash = ""
	return usr, nil
}

func (u *Users) UpdateProfile(ctx context.Context, callerID, targetID uuid.UUID, in UpdateProfileInput) error {
	if callerID != targetID {
		return user.ErrNotFound
	}

	fields := user.UpdateFields{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Gender:      in.Gender,
		YearOfBirth: in.YearOfBirth,
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		if email == "" || !strings.Contains(email, "@") {
			return FieldErrors{"email": "A valid email is required"}
		}
		fields.Email = &email
	}

	if fields.Email == nil && fields.FirstName == nil && fields.LastName == nil &&
		fields.Gender == nil && fields.YearOfBirth == nil {
		return ErrInvalidInput
	}

	return u.users.Update(ctx, targetID, fields)
}

func (u *Users) ListUsers(ctx context.Context) ([]user.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}
