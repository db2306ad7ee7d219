package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Gender       string
	YearOfBirth  *int
	Level        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
