package questionnaire

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrQuestionNotFound   = errors.New("question not found")
	ErrSessionNotFound    = errors.New("test session not found")
	ErrResponseNotFound   = errors.New("response not found")
	ErrDailySessionExists = errors.New("test session already exists for this day")
	ErrDuplicateResponse  = errors.New("response for this question already exists")
)

type QuestionRepository interface {
	List(ctx context.Context) ([]Question, error)
	GetByID(ctx context.Context, id uuid.UUID) (Question, error)
	// ExistingIDs reports which of the given question ids are present,
	// so bulk submission can be validated before any write.
	ExistingIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]bool, error)
}

type SessionRepository interface {
	// Create inserts a session; a (user, day) unique-constraint violation
	// surfaces as ErrDailySessionExists so the existence pre-check and the
	// insert stay race-free.
	Create(ctx context.Context, s Session) error
	GetByID(ctx context.Context, id uuid.UUID) (Session, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsForDay(ctx context.Context, userID uuid.UUID, day time.Time) (bool, error)

	// AddResponse inserts a response and recomputes the owning session's
	// score as the sum of its responses' Likert values, in one transaction.
	// A (session, question) duplicate surfaces as ErrDuplicateResponse.
	AddResponse(ctx context.Context, r Response) (newScore int, err error)
	// CreateWithResponses inserts the session, all responses, and the final
	// score atomically (bulk submission path).
	CreateWithResponses(ctx context.Context, s Session, responses []Response) error

	GetResponseByID(ctx context.Context, id uuid.UUID) (Response, error)
	ListResponsesByUser(ctx context.Context, userID uuid.UUID) ([]Response, error)
	ListResponsesBySession(ctx context.Context, sessionID uuid.UUID) ([]Response, error)
	// DeleteResponse removes a response and rescores its session in one
	// transaction.
	DeleteResponse(ctx context.Context, id uuid.UUID) (newScore int, err error)
}
