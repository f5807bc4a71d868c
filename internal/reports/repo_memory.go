package reports

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores reports in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Report
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Report)}
}

var _ Repo = (*MemoryRepo)(nil)

// Create stores the report.
func (r *MemoryRepo) Create(ctx context.Context, report Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[report.ID] = report
	return nil
}

// GetByID returns a report by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, reportID string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.byID[reportID]
	if !ok {
		return Report{}, ErrNotFound
	}
	return report, nil
}

// GetLatestBySession returns the newest report for a session.
func (r *MemoryRepo) GetLatestBySession(ctx context.Context, sessionID string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest Report
	found := false
	for _, report := range r.byID {
		if report.SessionID != sessionID {
			continue
		}
		if !found || report.CreatedAt.After(latest.CreatedAt) {
			latest = report
			found = true
		}
	}
	if !found {
		return Report{}, ErrNotFound
	}
	return latest, nil
}

// ListByUser returns reports for a user, newest first, with limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Report, error) {
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
	var out []Report
	for _, report := range r.byID {
		if report.UserID == userID {
			out = append(out, report)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) == 0 || offset >= len(out) {
		return []Report{}, nil
	}
	end := len(out)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return out[offset:end], nil
}
