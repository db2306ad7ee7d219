package repository

import (
	"context"
	"errors"
	"time"

	"prajnayana/internal/database"
	"prajnayana/internal/domain/habit"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresTrackingRepository struct {
	db database.DB
}

func NewPostgresTrackingRepository(db database.DB) *PostgresTrackingRepository {
	return &PostgresTrackingRepository{db: db}
}

const trackingColumns = `id, habit_id, user_id, track_date, completed, created_at`

func (r *PostgresTrackingRepository) Create(ctx context.Context, rec habit.TrackingRecord) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO habit_tracking_records (id, habit_id, user_id, track_date, completed)
VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.HabitID, rec.UserID, rec.TrackDate, rec.Completed,
	)
	if err != nil {
		if uniqueViolation(err, "uq_tracking_habit_user_day") {
			return habit.ErrDuplicateTracking
		}
		return err
	}
	return nil
}

func (r *PostgresTrackingRepository) GetByID(ctx context.Context, id uuid.UUID) (habit.TrackingRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+trackingColumns+` FROM habit_tracking_records WHERE id = $1`, id)
	return scanTracking(row)
}

func (r *PostgresTrackingRepository) ListByUser(ctx context.Context, userID uuid.UUID, date *time.Time) ([]habit.TrackingRecord, error) {
	query := `SELECT ` + trackingColumns + ` FROM habit_tracking_records WHERE user_id = $1`
	args := []any{userID}
	if date != nil {
		query += ` AND track_date = $2`
		args = append(args, *date)
	}
	query += ` ORDER BY track_date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]habit.TrackingRecord, 0)
	for rows.Next() {
		rec, err := scanTracking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresTrackingRepository) SetCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE habit_tracking_records SET completed = $1 WHERE id = $2`, completed, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return habit.ErrRecordNotFound
	}
	return nil
}

func (r *PostgresTrackingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM habit_tracking_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return habit.ErrRecordNotFound
	}
	return nil
}

func scanTracking(row database.Row) (habit.TrackingRecord, error) {
	var rec habit.TrackingRecord
	if err := row.Scan(&rec.ID, &rec.HabitID, &rec.UserID, &rec.TrackDate, &rec.Completed, &rec.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return habit.TrackingRecord{}, habit.ErrRecordNotFound
		}
		return habit.TrackingRecord{}, err
	}
	return rec, nil
}
