package reports

import (
	"time"

	"mri-backend/internal/insights"
	"mri-backend/internal/scoring"
)

// Report is a persisted scoring run for one session. Result carries the full
// structured output; Indices the supplemental 0-100 metrics.
type Report struct {
	ID          string              `json:"id"`
	SessionID   string              `json:"sessionId"`
	UserID      string              `json:"userId"`
	AnswersHash string              `json:"answersHash"`
	Result      scoring.ScoreResult `json:"result"`
	Indices     insights.Indices    `json:"indices"`
	CreatedAt   time.Time           `json:"createdAt"`
}
