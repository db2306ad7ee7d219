package habit

import (
	"time"

	"github.com/google/uuid"
)

// Habit is a trackable behavior. A nil UserID marks a shared habit visible
// to every user.
type Habit struct {
	ID          uuid.UUID
	UserID      *uuid.UUID
	Title       string
	Description string
	CreatedAt   time.Time
}

func (h Habit) Shared() bool {
	return h.UserID == nil
}

// TrackingRecord is one (habit, user, calendar day) completion flag.
type TrackingRecord struct {
	ID        uuid.UUID
	HabitID   uuid.UUID
	UserID    uuid.UUID
	TrackDate time.Time
	Completed bool
	CreatedAt time.Time
}
