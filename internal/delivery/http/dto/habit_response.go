package dto

import (
	"time"

	"github.com/google/uuid"
)

type HabitResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Shared      bool       `json:"shared"`
	CreatedAt   time.Time  `json:"created_at"`
}

type TrackingRecordResponse struct {
	ID        uuid.UUID `json:"id"`
	HabitID   uuid.UUID `json:"habit_id"`
	UserID    uuid.UUID `json:"user_id"`
	TrackDate string    `json:"date"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}
