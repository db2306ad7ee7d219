package visionboard

import (
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of vision-board item labels.
type Category string

const (
	CategoryQuote       Category = "Quote"
	CategoryAffirmation Category = "Affirmation"
	CategoryGoal        Category = "Goal"
	CategoryCBT         Category = "CBT"
	CategoryWin         Category = "Win"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryQuote, CategoryAffirmation, CategoryGoal, CategoryCBT, CategoryWin:
		return true
	default:
		return false
	}
}

type Item struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  Category
	Content   string
	Favorite  bool
	CreatedAt time.Time
}
