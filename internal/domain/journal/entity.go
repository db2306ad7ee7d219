package journal

import (
	"time"

	"github.com/google/uuid"
)

// Mood is the closed set of journal mood tags.
type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodSad      Mood = "Sad"
	MoodNeutral  Mood = "Neutral"
	MoodExcited  Mood = "Excited"
	MoodStressed Mood = "Stressed"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodNeutral, MoodExcited, MoodStressed:
		return true
	default:
		return false
	}
}

// Entry is one journal entry. EntryDate is the user-chosen day; CreatedAt is
// the immutable write timestamp and the default sort key.
type Entry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	EntryDate time.Time
	Mood      Mood
	Content   string
	CreatedAt time.Time
}
