package sessions

import (
	"context"
	"sort"
	"sync"
	"time"

	"mri-backend/internal/scoring"
)

// MemoryRepo stores sessions in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Session
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Session)}
}

var _ Repo = (*MemoryRepo)(nil)

// Create stores the session.
func (r *MemoryRepo) Create(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if session.Answers == nil {
		session.Answers = map[int]int{}
	}
	r.byID[session.ID] = session
	return nil
}

// GetByID returns a session by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, sessionID string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.byID[sessionID]
	if !ok {
		return Session{}, ErrNotFound
	}
	return cloneSession(session), nil
}

// SaveAnswers merges new answers into the stored set and optionally replaces
// the profile.
func (r *MemoryRepo) SaveAnswers(ctx context.Context, sessionID string, answers map[int]int, profile *scoring.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.byID[sessionID]
	if !ok {
		return ErrNotFound
	}
	merged := make(map[int]int, len(session.Answers)+len(answers))
	for id, v := range session.Answers {
		merged[id] = v
	}
	for id, v := range answers {
		merged[id] = v
	}
	session.Answers = merged
	if profile != nil {
		p := *profile
		session.Profile = &p
	}
	session.UpdatedAt = time.Now().UTC()
	r.byID[sessionID] = session
	return nil
}

// SetStatus updates the session status.
func (r *MemoryRepo) SetStatus(ctx context.Context, sessionID, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.byID[sessionID]
	if !ok {
		return ErrNotFound
	}
	session.Status = status
	session.UpdatedAt = time.Now().UTC()
	r.byID[sessionID] = session
	return nil
}

// ListByUser returns sessions for a user, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	var out []Session
	for _, session := range r.byID {
		if session.UserID == userID {
			out = append(out, cloneSession(session))
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) == 0 || offset >= len(out) {
		return []Session{}, nil
	}
	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}

func cloneSession(s Session) Session {
	answers := make(map[int]int, len(s.Answers))
	for id, v := range s.Answers {
		answers[id] = v
	}
	s.Answers = answers
	if s.Profile != nil {
		p := *s.Profile
		s.Profile = &p
	}
	return s
}
