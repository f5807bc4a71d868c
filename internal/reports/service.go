package reports

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"mri-backend/internal/insights"
	"mri-backend/internal/scoring"
	"mri-backend/internal/sessions"
	"mri-backend/internal/shared/metrics"
	"mri-backend/internal/shared/telemetry"
	"mri-backend/internal/shared/util"
)

// Service scores sessions into persisted reports.
type Service struct {
	Repo     Repo
	Sessions *sessions.Service
	Engine   *scoring.Engine
}

// Generate scores a session and persists the report. Scoring an already
// completed session returns the existing report instead of a new one, so the
// endpoint is safe to retry.
func (s *Service) Generate(ctx context.Context, userID, sessionID string) (Report, error) {
	session, err := s.Sessions.Get(ctx, userID, sessionID)
	if err != nil {
		return Report{}, err
	}

	if session.Status == sessions.StatusCompleted {
		existing, err := s.Repo.GetLatestBySession(ctx, sessionID)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return Report{}, err
		}
		// completed but no report on record; fall through and rescore
	}

	metrics.IncScoreStarted()
	started := metrics.NowMillis()

	result, err := s.Engine.CalculateScore(session.Answers, session.Profile)
	if err != nil {
		metrics.IncScoreFailed()
		return Report{}, err
	}
	indices := insights.Calculate(session.Answers, insightProfile(session.Profile))

	report := Report{
		ID:          uuid.New().String(),
		SessionID:   session.ID,
		UserID:      session.UserID,
		AnswersHash: util.HashAnswers(session.Answers),
		Result:      result,
		Indices:     indices,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, report); err != nil {
		metrics.IncScoreFailed()
		return Report{}, err
	}

	if err := s.Sessions.Complete(ctx, sessionID); err != nil {
		telemetry.Warn("session.complete_failed", map[string]any{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}

	metrics.ObserveScoreDurationMs(metrics.NowMillis() - started)
	metrics.IncScoreCompleted()
	return report, nil
}

// Get returns a report owned by the user. A report belonging to someone else
// reads as not found.
func (s *Service) Get(ctx context.Context, userID, reportID string) (Report, error) {
	report, err := s.Repo.GetByID(ctx, reportID)
	if err != nil {
		return Report{}, err
	}
	if report.UserID != userID {
		return Report{}, ErrNotFound
	}
	return report, nil
}

// List returns the user's reports, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Report, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func insightProfile(p *scoring.Profile) insights.Profile {
	if p == nil {
		return insights.Profile{}
	}
	return insights.Profile{
		RelationshipDuration: p.RelationshipDuration,
		PartnerConflictStyle: p.PartnerConflictStyle,
		FightFrequency:       p.FightFrequency,
		RepairFrequency:      p.RepairFrequency,
		BiggestFear:          p.BiggestFear,
	}
}
