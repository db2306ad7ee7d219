package content

import (
	"time"

	"github.com/google/uuid"
)

// Category is the closed set of knowledge-hub labels.
type Category string

const (
	CategoryMindfulness   Category = "Mindfulness"
	CategoryRelationships Category = "Relationships"
	CategoryCareer        Category = "Career"
	CategoryHealth        Category = "Health"
	CategoryPhilosophy    Category = "Philosophy"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMindfulness, CategoryRelationships, CategoryCareer, CategoryHealth, CategoryPhilosophy:
		return true
	default:
		return false
	}
}

// Hub is a content bucket; Level gates visibility against the viewer's level.
type Hub struct {
	ID          uuid.UUID
	Title       string
	Description string
	Category    Category
	Level       int
	CreatedAt   time.Time
}

// Article is a content item. HubID is nil when the parent hub was removed;
// the link is cleared, never cascaded.
type Article struct {
	ID        uuid.UUID
	HubID     *uuid.UUID
	Title     string
	Summary   string
	Content   string
	Tags      string
	CreatedAt time.Time
}
