package usecase

import (
	"errors"

	"prajnayana/internal/pkg/validate"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// FieldErrors aliases validate.FieldErrors so callers of this package keep a
// single import for validation failures.
type FieldErrors = validate.FieldErrors
