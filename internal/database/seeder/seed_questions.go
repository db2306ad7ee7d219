package seeder

import (
	"context"
	"fmt"

	"prajnayana/internal/database"
)

// QuestionsSeeder installs the discovery questionnaire. Questions are keyed
// by their text so reruns are no-ops.
type QuestionsSeeder struct{}

func (QuestionsSeeder) Name() string { return "discovery_questions" }

func (QuestionsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	questions := []string{
		"I have a clear sense of what matters most to me in life.",
		"I regularly make time for activities that recharge me.",
		"I feel connected to the people around me.",
		"I can name the emotions I experience as they happen.",
		"I keep commitments I make to myself.",
		"I am comfortable spending time alone with my thoughts.",
		"I notice when my inner critic is speaking and can step back from it.",
		"My daily routines reflect my long-term goals.",
		"I can let go of things outside my control.",
		"I approach setbacks as something to learn from.",
	}

	for _, text := range questions {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO discovery_questions (id, text)
			 SELECT gen_random_uuid(), $1
			 WHERE NOT EXISTS (SELECT 1 FROM discovery_questions WHERE text = $1)`,
			text,
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
