package seeder

import (
	"context"
	"fmt"

	"prajnayana/internal/database"
)

// KnowledgeSeeder installs the starter knowledge hubs and one introductory
// article per hub. Hubs are keyed by title so reruns are no-ops.
type KnowledgeSeeder struct{}

func (KnowledgeSeeder) Name() string { return "knowledge_hubs" }

func (KnowledgeSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	hubs := []struct {
		Title       string
		Description string
		Category    string
		Level       int
		Article     struct {
			Title   string
			Summary string
			Tags    string
		}
	}{
		{
			Title:       "Getting Started with Mindfulness",
			Description: "Foundations of attention and present-moment awareness.",
			Category:    "Mindfulness",
			Level:       1,
		},
		{
			Title:       "Healthy Relationships",
			Description: "Boundaries, communication, and repair.",
			Category:    "Relationships",
			Level:       1,
		},
		{
			Title:       "Career and Meaning",
			Description: "Aligning work with values.",
			Category:    "Career",
			Level:       2,
		},
		{
			Title:       "Sleep and Recovery",
			Description: "The physiology of rest and how to protect it.",
			Category:    "Health",
			Level:       1,
		},
		{
			Title:       "Stoic Foundations",
			Description: "Classical practices for modern equanimity.",
			Category:    "Philosophy",
			Level:       3,
		},
	}

	for _, h := range hubs {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO knowledge_hubs (id, title, description, category, level)
			 SELECT gen_random_uuid(), $1, $2, $3, $4
			 WHERE NOT EXISTS (SELECT 1 FROM knowledge_hubs WHERE title = $1)`,
			h.Title,
			h.Description,
			h.Category,
			h.Level,
		)
		if err != nil {
			return err
		}

		articleTitle := "Introduction: " + h.Title
		_, err = tx.Exec(
			ctx,
			`INSERT INTO articles (id, hub_id, title, summary, content, tags)
			 SELECT gen_random_uuid(), k.id, $2, $3, '', $4
			 FROM knowledge_hubs k
			 WHERE k.title = $1
			   AND NOT EXISTS (SELECT 1 FROM articles WHERE title = $2)`,
			h.Title,
			articleTitle,
			"An overview of "+h.Title+".",
			h.Category,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
