package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

var _ Repo = (*PGRepo)(nil)

// Create inserts a new report.
func (r *PGRepo) Create(ctx context.Context, report Report) error {
	const query = `
INSERT INTO reports (id, session_id, user_id, answers_hash, result, indices, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	resultPayload, err := json.Marshal(report.Result)
	if err != nil {
		return err
	}
	indicesPayload, err := json.Marshal(report.Indices)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		report.ID,
		report.SessionID,
		report.UserID,
		report.AnswersHash,
		resultPayload,
		indicesPayload,
		report.CreatedAt,
	)
	return err
}

// GetByID returns a report by ID.
func (r *PGRepo) GetByID(ctx context.Context, reportID string) (Report, error) {
	const query = `
SELECT id, session_id, user_id, answers_hash, result, indices, created_at
FROM reports
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, reportID))
}

// GetLatestBySession returns the newest report for a session.
func (r *PGRepo) GetLatestBySession(ctx context.Context, sessionID string) (Report, error) {
	const query = `
SELECT id, session_id, user_id, answers_hash, result, indices, created_at
FROM reports
WHERE session_id = $1
ORDER BY created_at DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, sessionID))
}

// ListByUser lists reports for a user ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Report, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	const query = `
SELECT id, session_id, user_id, answers_hash, result, indices, created_at
FROM reports
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var report Report
		var resultRaw sql.NullString
		var indicesRaw sql.NullString
		if err := rows.Scan(
			&report.ID,
			&report.SessionID,
			&report.UserID,
			&report.AnswersHash,
			&resultRaw,
			&indicesRaw,
			&report.CreatedAt,
		); err != nil {
			return nil, err
		}
		unmarshalPayloads(&report, resultRaw, indicesRaw)
		out = append(out, report)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Report, error) {
	var report Report
	var resultRaw sql.NullString
	var indicesRaw sql.NullString
	err := row.Scan(
		&report.ID,
		&report.SessionID,
		&report.UserID,
		&report.AnswersHash,
		&resultRaw,
		&indicesRaw,
		&report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Report{}, ErrNotFound
		}
		return Report{}, err
	}
	unmarshalPayloads(&report, resultRaw, indicesRaw)
	return report, nil
}

func unmarshalPayloads(report *Report, resultRaw, indicesRaw sql.NullString) {
	if resultRaw.Valid {
		_ = json.Unmarshal([]byte(resultRaw.String), &report.Result)
	}
	if indicesRaw.Valid {
		_ = json.Unmarshal([]byte(indicesRaw.String), &report.Indices)
	}
}
