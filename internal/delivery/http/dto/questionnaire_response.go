package dto

import (
	"time"

	"github.com/google/uuid"
)

type QuestionResponse struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type TestSessionResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Score     *int      `json:"score"`
	TakenOn   string    `json:"taken_on"`
	CreatedAt time.Time `json:"created_at"`
}

type QuestionnaireResponseResponse struct {
	ID             uuid.UUID `json:"id"`
	SessionID      uuid.UUID `json:"test_session"`
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedOption int       `json:"selected_option"`
	OptionLabel    string    `json:"option_label"`
}
