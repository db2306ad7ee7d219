package dto

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeHubResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Level       int       `json:"level"`
	CreatedAt   time.Time `json:"created_at"`
}

type ArticleResponse struct {
	ID        uuid.UUID  `json:"id"`
	HubID     *uuid.UUID `json:"knowledge_hub"`
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Content   string     `json:"content"`
	Tags      string     `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
}
