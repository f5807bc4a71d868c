package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mri-backend/internal/scoring"
)

// Service owns session lifecycle rules on top of a Repo.
type Service struct {
	Repo Repo
}

// Start creates a fresh in-progress session for the user.
func (s *Service) Start(ctx context.Context, userID string) (Session, error) {
	if userID == "" {
		return Session{}, fmt.Errorf("%w: missing user", ErrInvalidInput)
	}
	now := time.Now().UTC()
	session := Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Status:    StatusInProgress,
		Answers:   map[int]int{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return Session{}, err
	}
	return session, nil
}

// Get returns a session owned by the user. A session belonging to someone
// else reads as not found.
func (s *Service) Get(ctx context.Context, userID, sessionID string) (Session, error) {
	session, err := s.Repo.GetByID(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	if session.UserID != userID {
		return Session{}, ErrNotFound
	}
	return session, nil
}

// SaveAnswers validates and merges a batch of answers, optionally updating
// the profile, and returns the refreshed session.
func (s *Service) SaveAnswers(ctx context.Context, userID, sessionID string, answers map[int]int, profile *scoring.Profile) (Session, error) {
	if len(answers) == 0 && profile == nil {
		return Session{}, fmt.Errorf("%w: nothing to save", ErrInvalidInput)
	}
	for id, value := range answers {
		if !scoring.IsKnownQuestion(id) {
			return Session{}, fmt.Errorf("%w: unknown question id %d", ErrInvalidInput, id)
		}
		if !scoring.IsValidAnswer(value) {
			return Session{}, fmt.Errorf("%w: answer for question %d out of range", ErrInvalidInput, id)
		}
	}

	session, err := s.Get(ctx, userID, sessionID)
	if err != nil {
		return Session{}, err
	}
	if session.Status == StatusCompleted {
		return Session{}, ErrCompleted
	}

	if err := s.Repo.SaveAnswers(ctx, sessionID, answers, profile); err != nil {
		return Session{}, err
	}
	return s.Get(ctx, userID, sessionID)
}

// Complete marks a session scored.
func (s *Service) Complete(ctx context.Context, sessionID string) error {
	return s.Repo.SetStatus(ctx, sessionID, StatusCompleted)
}

// List returns the user's sessions, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Session, error) {
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
