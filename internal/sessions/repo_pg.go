package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"mri-backend/internal/scoring"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

var _ Repo = (*PGRepo)(nil)

// Create inserts a new session.
func (r *PGRepo) Create(ctx context.Context, session Session) error {
	const query = `
INSERT INTO sessions (id, user_id, status, answers, profile, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	answersPayload, err := json.Marshal(session.Answers)
	if err != nil {
		return err
	}
	var profilePayload any
	if session.Profile != nil {
		profilePayload, err = json.Marshal(session.Profile)
		if err != nil {
			return err
		}
	}
	_, err = r.DB.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.Status,
		answersPayload,
		profilePayload,
		session.CreatedAt,
		session.UpdatedAt,
	)
	return err
}

// GetByID returns a session by ID.
func (r *PGRepo) GetByID(ctx context.Context, sessionID string) (Session, error) {
	const query = `
SELECT id, user_id, status, answers, profile, created_at, updated_at
FROM sessions
WHERE id = $1
LIMIT 1`
	var s Session
	var answersRaw sql.NullString
	var profileRaw sql.NullString
	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(
		&s.ID,
		&s.UserID,
		&s.Status,
		&answersRaw,
		&profileRaw,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	if answersRaw.Valid {
		s.Answers = map[int]int{}
		if err := json.Unmarshal([]byte(answersRaw.String), &s.Answers); err != nil {
			s.Answers = nil
		}
	}
	if profileRaw.Valid {
		var p scoring.Profile
		if err := json.Unmarshal([]byte(profileRaw.String), &p); err == nil {
			s.Profile = &p
		}
	}
	return s, nil
}

// SaveAnswers merges new answers into the stored set and optionally replaces
// the profile. Merging happens in SQL so concurrent saves do not drop keys.
func (r *PGRepo) SaveAnswers(ctx context.Context, sessionID string, answers map[int]int, profile *scoring.Profile) error {
	const query = `
UPDATE sessions
SET answers = answers || $1::jsonb,
    profile = COALESCE($2::jsonb, profile),
    updated_at = now()
WHERE id = $3::uuid`

	answersPayload, err := json.Marshal(answers)
	if err != nil {
		return err
	}
	var profilePayload any
	if profile != nil {
		profilePayload, err = json.Marshal(profile)
		if err != nil {
			return err
		}
	}
	res, err := r.DB.ExecContext(ctx, query, answersPayload, profilePayload, sessionID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus updates the session status.
func (r *PGRepo) SetStatus(ctx context.Context, sessionID, status string) error {
	const query = `
UPDATE sessions
SET status = $1,
    updated_at = now()
WHERE id = $2::uuid`

	res, err := r.DB.ExecContext(ctx, query, status, sessionID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser lists sessions for a user ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Session, error) {
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
SELECT id, user_id, status, answers, profile, created_at, updated_at
FROM sessions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var s Session
		var answersRaw sql.NullString
		var profileRaw sql.NullString
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.Status,
			&answersRaw,
			&profileRaw,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if answersRaw.Valid {
			s.Answers = map[int]int{}
			if err := json.Unmarshal([]byte(answersRaw.String), &s.Answers); err != nil {
				s.Answers = nil
			}
		}
		if profileRaw.Valid {
			var p scoring.Profile
			if err := json.Unmarshal([]byte(profileRaw.String), &p); err == nil {
				s.Profile = &p
			}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
