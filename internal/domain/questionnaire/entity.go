package questionnaire

import (
	"time"

	"github.com/google/uuid"
)

// Likert is one of the five ordered agreement levels. Its integer value is
// the response's contribution to a session score.
type Likert int

const (
	Disagree         Likert = 1
	SomewhatDisagree Likert = 2
	Neutral          Likert = 3
	SomewhatAgree    Likert = 4
	Agree            Likert = 5
)

func (l Likert) Valid() bool {
	return l >= Disagree && l <= Agree
}

func (l Likert) Label() string {
	switch l {
	case Disagree:
		return "Disagree"
	case SomewhatDisagree:
		return "Somewhat Disagree"
	case Neutral:
		return "Neither Agree nor Disagree"
	case SomewhatAgree:
		return "Somewhat Agree"
	case Agree:
		return "Agree"
	default:
		return ""
	}
}

type Question struct {
	ID        uuid.UUID
	Text      string
	CreatedAt time.Time
}

// Session is one scoring attempt. Score is the running sum of its responses'
// Likert values, and TakenOn is the calendar day the daily-uniqueness rule
// keys on.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Score     *int
	TakenOn   time.Time
	CreatedAt time.Time
}

type Response struct {
	ID             uuid.UUID
	SessionID      uuid.UUID
	QuestionID     uuid.UUID
	SelectedOption Likert
	CreatedAt      time.Time
}
