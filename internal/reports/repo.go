package reports

import "context"

// Repo defines persistence operations for reports.
type Repo interface {
	Create(ctx context.Context, report Report) error
	GetByID(ctx context.Context, reportID string) (Report, error)
	GetLatestBySession(ctx context.Context, sessionID string) (Report, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Report, error)
}
