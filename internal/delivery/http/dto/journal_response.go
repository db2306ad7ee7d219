package dto

import (
	"time"

	"github.com/google/uuid"
)

type JournalEntryResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	EntryDate string    `json:"date"`
	Mood      string    `json:"mood"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
