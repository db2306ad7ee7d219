package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Gender      string    `json:"gender"`
	YearOfBirth *int      `json:"year_of_birth"`
	Level       int       `json:"level"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserListResponse struct {
	Data  []UserResponse `json:"data"`
	Count int            `json:"count"`
}
