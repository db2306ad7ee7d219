package seeder

import (
	"context"
	"fmt"

	"prajnayana/internal/database"
)

// SharedHabitsSeeder installs the global habits every user can track.
// A shared habit is one with no owner.
type SharedHabitsSeeder struct{}

func (SharedHabitsSeeder) Name() string { return "shared_habits" }

func (SharedHabitsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Title       string
		Description string
	}{
		{Title: "Morning reflection", Description: "Spend five minutes reviewing how you feel before the day starts."},
		{Title: "Daily walk", Description: "A short walk outside, ideally without your phone."},
		{Title: "Gratitude note", Description: "Write down one thing you are grateful for today."},
		{Title: "Screen-free hour", Description: "One hour before bed without screens."},
		{Title: "Read ten pages", Description: "Ten pages of any book that is not work-related."},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO habits (id, user_id, title, description)
			 SELECT gen_random_uuid(), NULL, $1, $2
			 WHERE NOT EXISTS (SELECT 1 FROM habits WHERE user_id IS NULL AND title = $1)`,
			it.Title,
			it.Description,
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
