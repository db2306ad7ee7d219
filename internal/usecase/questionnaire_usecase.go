package usecase

import (
	"context"
	"time"

	"prajnayana/internal/domain/questionnaire"

	"github.com/google/uuid"
)

type BulkAnswer struct {
	QuestionID     uuid.UUID
	SelectedOption questionnaire.Likert
}

type QuestionnaireUsecase interface {
	ListQuestions(ctx context.Context) ([]questionnaire.Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (questionnaire.Question, error)

	CreateSession(ctx context.Context, callerID uuid.UUID) (questionnaire.Session, error)
	ListSessions(ctx context.Context, callerID uuid.UUID) ([]questionnaire.Session, error)
	GetSession(ctx context.Context, callerID, sessionID uuid.UUID) (questionnaire.Session, error)
	DeleteSession(ctx context.Context, callerID, sessionID uuid.UUID) error

	SubmitResponse(ctx context.Context, callerID, sessionID, questionID uuid.UUID, option questionnaire.Likert) (questionnaire.Response, int, error)
	BulkSubmit(ctx context.Context, callerID uuid.UUID, answers []BulkAnswer) (questionnaire.Session, error)

	ListResponses(ctx context.Context, callerID uuid.UUID) ([]questionnaire.Response, error)
	ListSessionResponses(ctx context.Context, callerID, sessionID uuid.UUID) ([]questionnaire.Response, error)
	GetResponse(ctx context.Context, callerID, responseID uuid.UUID) (questionnaire.Response, error)
	DeleteResponse(ctx context.Context, callerID, responseID uuid.UUID) error
}

type Questionnaire struct {
	questions questionnaire.QuestionRepository
	sessions  questionnaire.SessionRepository

	now func() time.Time
}

func NewQuestionnaireUsecase(questions questionnaire.QuestionRepository, sessions questionnaire.SessionRepository) *Questionnaire {
	return &Questionnaire{questions: questions, sessions: sessions, now: time.Now}
}

func (q *Questionnaire) ListQuestions(ctx context.Context) ([]questionnaire.Question, error) {
	return q.questions.List(ctx)
}

func (q *Questionnaire) GetQuestion(ctx context.Context, id uuid.UUID) (questionnaire.Question, error) {
	return q.questions.GetByID(ctx, id)
}

func (q *Questionnaire) CreateSession(ctx context.Context, callerID uuid.UUID) (questionnaire.Session, error) {
	today := dateOnly(q.now())

	// Pre-check for a friendly error; the (user, day) unique constraint
	// still closes the race between this check and the insert.
	exists, err := q.sessions.ExistsForDay(ctx, callerID, today)
	if err != nil {
		return questionnaire.Session{}, err
	}
	if exists {
		return questionnaire.Session{}, questionnaire.ErrDailySessionExists
	}

	score := 0
	s := questionnaire.Session{
		ID:      uuid.New(),
		UserID:  callerID,
		Score:   &score,
		TakenOn: today,
	}
	if err := q.sessions.Create(ctx, s); err != nil {
		return questionnaire.Session{}, err
	}
	return s, nil
}

func (q *Questionnaire) ListSessions(ctx context.Context, callerID uuid.UUID) ([]questionnaire.Session, error) {
	return q.sessions.ListByUser(ctx, callerID)
}

func (q *Questionnaire) GetSession(ctx context.Context, callerID, sessionID uuid.UUID) (questionnaire.Session, error) {
	return q.ownedSession(ctx, callerID, sessionID)
}

func (q *Questionnaire) DeleteSession(ctx context.Context, callerID, sessionID uuid.UUID) error {
	if _, err := q.ownedSession(ctx, callerID, sessionID); err != nil {
		return err
	}
	return q.sessions.Delete(ctx, sessionID)
}

func (q *Questionnaire) SubmitResponse(ctx context.Context, callerID, sessionID, questionID uuid.UUID, option questionnaire.Likert) (questionnaire.Response, int, error) {
	if !option.Valid() {
		return questionnaire.Response{}, 0, FieldErrors{"selected_option": "Selected option must be between 1 and 5"}
	}

	if _, err := q.ownedSession(ctx, callerID, sessionID); err != nil {
		return questionnaire.Response{}, 0, err
	}
	if _, err := q.questions.GetByID(ctx, questionID); err != nil {
		return questionnaire.Response{}, 0, err
	}

	resp := questionnaire.Response{
		ID:             uuid.New(),
		SessionID:      sessionID,
		QuestionID:     questionID,
		SelectedOption: option,
	}
	score, err := q.sessions.AddResponse(ctx, resp)
	if err != nil {
		return questionnaire.Response{}, 0, err
	}
	return resp, score, nil
}

func (q *Questionnaire) BulkSubmit(ctx context.Context, callerID uuid.UUID, answers []BulkAnswer) (questionnaire.Session, error) {
	if len(answers) == 0 {
		return questionnaire.Session{}, FieldErrors{"responses": "At least one response is required"}
	}

	seen := make(map[uuid.UUID]bool, len(answers))
	ids := make([]uuid.UUID, 0, len(answers))
	total := 0
	for _, a := range answers {
		if !a.SelectedOption.Valid() {
			return questionnaire.Session{}, FieldErrors{"selected_option": "Selected option must be between 1 and 5"}
		}
		if seen[a.QuestionID] {
			return questionnaire.Session{}, questionnaire.ErrDuplicateResponse
		}
		seen[a.QuestionID] = true
		ids = append(ids, a.QuestionID)
		total += int(a.SelectedOption)
	}

	existing, err := q.questions.ExistingIDs(ctx, ids)
	if err != nil {
		return questionnaire.Session{}, err
	}
	for _, id := range ids {
		if !existing[id] {
			return questionnaire.Session{}, questionnaire.ErrQuestionNotFound
		}
	}

	today := dateOnly(q.now())
	exists, err := q.sessions.ExistsForDay(ctx, callerID, today)
	if err != nil {
		return questionnaire.Session{}, err
	}
	if exists {
		return questionnaire.Session{}, questionnaire.ErrDailySessionExists
	}

	s := questionnaire.Session{
		ID:      uuid.New(),
		UserID:  callerID,
		Score:   &total,
		TakenOn: today,
	}
	responses := make([]questionnaire.Response, 0, len(answers))
	for _, a := range answers {
		responses = append(responses, questionnaire.Response{
			ID:             uuid.New(),
			SessionID:      s.ID,
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
		})
	}

	if err := q.sessions.CreateWithResponses(ctx, s, responses); err != nil {
		return questionnaire.Session{}, err
	}
	return s, nil
}

func (q *Questionnaire) ListResponses(ctx context.Context, callerID uuid.UUID) ([]questionnaire.Response, error) {
	return q.sessions.ListResponsesByUser(ctx, callerID)
}

func (q *Questionnaire) ListSessionResponses(ctx context.Context, callerID, sessionID uuid.UUID) ([]questionnaire.Response, error) {
	if _, err := q.ownedSession(ctx, callerID, sessionID); err != nil {
		return nil, err
	}
	return q.sessions.ListResponsesBySession(ctx, sessionID)
}

func (q *Questionnaire) GetResponse(ctx context.Context, callerID, responseID uuid.UUID) (questionnaire.Response, error) {
	resp, err := q.sessions.GetResponseByID(ctx, responseID)
	if err != nil {
		return questionnaire.Response{}, err
	}
	if _, err := q.ownedSession(ctx, callerID, resp.SessionID); err != nil {
		// Do not reveal that a foreign response exists.
		return questionnaire.Response{}, questionnaire.ErrResponseNotFound
	}
	return resp, nil
}

func (q *Questionnaire) DeleteResponse(ctx context.Context, callerID, responseID uuid.UUID) error {
	if _, err := q.GetResponse(ctx, callerID, responseID); err != nil {
		return err
	}
	_, err := q.sessions.DeleteResponse(ctx, responseID)
	return err
}

// ownedSession fetches a session and hides foreign ones behind not-found.
func (q *Questionnaire) ownedSession(ctx context.Context, callerID, sessionID uuid.UUID) (questionnaire.Session, error) {
	s, err := q.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return questionnaire.Session{}, err
	}
	if s.UserID != callerID {
		return questionnaire.Session{}, questionnaire.ErrSessionNotFound
	}
	return s, nil
}

// dateOnly truncates t to its UTC calendar day.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
