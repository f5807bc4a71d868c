package sessions

import (
	"time"

	"mri-backend/internal/scoring"
)

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Session represents one questionnaire run. Answers accumulate across saves
// until the session is scored.
type Session struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Status    string           `json:"status"`
	Answers   map[int]int      `json:"answers"`
	Profile   *scoring.Profile `json:"profile,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
