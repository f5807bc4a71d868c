package sessions

import (
	"context"

	"mri-backend/internal/scoring"
)

// Repo defines persistence operations for sessions.
type Repo interface {
	Create(ctx context.Context, session Session) error
	GetByID(ctx context.Context, sessionID string) (Session, error)
	SaveAnswers(ctx context.Context, sessionID string, answers map[int]int, profile *scoring.Profile) error
	SetStatus(ctx context.Context, sessionID, status string) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Session, error)
}
