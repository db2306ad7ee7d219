package repository

import (
	"context"
	"errors"
	"time"

	"prajnayana/internal/database"
	"prajnayana/internal/domain/questionnaire"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresSessionRepository struct {
	db database.DB
}

func NewPostgresSessionRepository(db database.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

const sessionColumns = `id, user_id, score, taken_on, created_at`

func (r *PostgresSessionRepository) Create(ctx context.Context, s questionnaire.Session) error {
	_, err := r.db.Exec(ctx, `
INSERT INTO test_sessions (id, user_id, score, taken_on) VALUES ($1, $2, $3, $4)`,
		s.ID, s.UserID, s.Score, s.TakenOn,
	)
	if err != nil {
		if uniqueViolation(err, "uq_test_sessions_user_day") {
			return questionnaire.ErrDailySessionExists
		}
		return err
	}
	return nil
}

func (r *PostgresSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (questionnaire.Session, error) {
	row := r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM test_sessions WHERE id = $1`, id)
	return scanSession(row)
}

func (r *PostgresSessionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]questionnaire.Session, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+sessionColumns+` FROM test_sessions WHERE user_id = $1 ORDER BY taken_on DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]questionnaire.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM test_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return questionnaire.ErrSessionNotFound
	}
	return nil
}

func (r *PostgresSessionRepository) ExistsForDay(ctx context.Context, userID uuid.UUID, day time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM test_sessions WHERE user_id = $1 AND taken_on = $2)`,
		userID, day,
	).Scan(&exists)
	return exists, err
}

func (r *PostgresSessionRepository) AddResponse(ctx context.Context, resp questionnaire.Response) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
INSERT INTO questionnaire_responses (id, session_id, question_id, selected_option)
VALUES ($1, $2, $3, $4)`,
		resp.ID, resp.SessionID, resp.QuestionID, int(resp.SelectedOption),
	)
	if err != nil {
		if uniqueViolation(err, "uq_responses_session_question") {
			return 0, questionnaire.ErrDuplicateResponse
		}
		return 0, err
	}

	score, err := rescoreSession(ctx, tx, resp.SessionID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return score, nil
}

func (r *PostgresSessionRepository) CreateWithResponses(ctx context.Context, s questionnaire.Session, responses []questionnaire.Response) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
INSERT INTO test_sessions (id, user_id, score, taken_on) VALUES ($1, $2, $3, $4)`,
		s.ID, s.UserID, s.Score, s.TakenOn,
	)
	if err != nil {
		if uniqueViolation(err, "uq_test_sessions_user_day") {
			return questionnaire.ErrDailySessionExists
		}
		return err
	}

	for _, resp := range responses {
		_, err = tx.Exec(ctx, `
INSERT INTO questionnaire_responses (id, session_id, question_id, selected_option)
VALUES ($1, $2, $3, $4)`,
			resp.ID, resp.SessionID, resp.QuestionID, int(resp.SelectedOption),
		)
		if err != nil {
			if uniqueViolation(err, "uq_responses_session_question") {
				return questionnaire.ErrDuplicateResponse
			}
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresSessionRepository) GetResponseByID(ctx context.Context, id uuid.UUID) (questionnaire.Response, error) {
	row := r.db.QueryRow(ctx, `
SELECT id, session_id, question_id, selected_option, created_at
FROM questionnaire_responses WHERE id = $1`, id)
	return scanResponse(row)
}

func (r *PostgresSessionRepository) ListResponsesByUser(ctx context.Context, userID uuid.UUID) ([]questionnaire.Response, error) {
	rows, err := r.db.Query(ctx, `
SELECT qr.id, qr.session_id, qr.question_id, qr.selected_option, qr.created_at
FROM questionnaire_responses qr
JOIN test_sessions ts ON ts.id = qr.session_id
WHERE ts.user_id = $1
ORDER BY qr.created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	return collectResponses(rows)
}

func (r *PostgresSessionRepository) ListResponsesBySession(ctx context.Context, sessionID uuid.UUID) ([]questionnaire.Response, error) {
	rows, err := r.db.Query(ctx, `
SELECT id, session_id, question_id, selected_option, created_at
FROM questionnaire_responses
WHERE session_id = $1
ORDER BY created_at ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	return collectResponses(rows)
}

func (r *PostgresSessionRepository) DeleteResponse(ctx context.Context, id uuid.UUID) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var sessionID uuid.UUID
	err = tx.QueryRow(ctx,
		`DELETE FROM questionnaire_responses WHERE id = $1 RETURNING session_id`, id,
	).Scan(&sessionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, questionnaire.ErrResponseNotFound
		}
		return 0, err
	}

	score, err := rescoreSession(ctx, tx, sessionID)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return score, nil
}

// rescoreSession recomputes and persists the session score as the sum of its
// responses' Likert values, inside the caller's transaction.
func rescoreSession(ctx context.Context, tx database.Tx, sessionID uuid.UUID) (int, error) {
	var score int
	err := tx.QueryRow(ctx, `
UPDATE test_sessions
SET score = (
	SELECT COALESCE(SUM(selected_option), 0)
	FROM questionnaire_responses
	WHERE session_id = $1
)
WHERE id = $1
RETURNING score`, sessionID).Scan(&score)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, questionnaire.ErrSessionNotFound
		}
		return 0, err
	}
	return score, nil
}

func scanSession(row database.Row) (questionnaire.Session, error) {
	var s questionnaire.Session
	if err := row.Scan(&s.ID, &s.UserID, &s.Score, &s.TakenOn, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return questionnaire.Session{}, questionnaire.ErrSessionNotFound
		}
		return questionnaire.Session{}, err
	}
	return s, nil
}

func scanResponse(row database.Row) (questionnaire.Response, error) {
	var resp questionnaire.Response
	var opt int
	if err := row.Scan(&resp.ID, &resp.SessionID, &resp.QuestionID, &opt, &resp.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return questionnaire.Response{}, questionnaire.ErrResponseNotFound
		}
		return questionnaire.Response{}, err
	}
	resp.SelectedOption = questionnaire.Likert(opt)
	return resp, nil
}

func collectResponses(rows database.Rows) ([]questionnaire.Response, error) {
	defer rows.Close()

	out := make([]questionnaire.Response, 0)
	for rows.Next() {
		resp, err := scanResponse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
