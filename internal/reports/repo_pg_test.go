package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"mri-backend/internal/insights"
	"mri-backend/internal/scoring"
)

func TestPGRepoCreateInsertsAllColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	report := Report{
		ID:          "report-1",
		SessionID:   "session-1",
		UserID:      "guest:abc",
		AnswersHash: "deadbeef",
		Result:      scoring.ScoreResult{DominantLens: scoring.DimCommunication},
		Indices:     insights.Indices{SustainabilityForecast: 60},
		CreatedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO reports").
		WithArgs(
			report.ID,
			report.SessionID,
			report.UserID,
			report.AnswersHash,
			sqlmock.AnyArg(), // result json
			sqlmock.AnyArg(), // indices json
			report.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), report); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDParsesPayloads(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "session_id", "user_id", "answers_hash", "result", "indices", "created_at"}).
		AddRow("report-1", "session-1", "guest:abc", "deadbeef",
			`{"dominantLens":"communication"}`,
			`{"sustainability_forecast":60}`,
			now)
	mock.ExpectQuery("SELECT id, session_id, user_id, answers_hash, result, indices, created_at").
		WithArgs("report-1").
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), "report-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Result.DominantLens != scoring.DimCommunication {
		t.Fatalf("unexpected result %+v", got.Result)
	}
	if got.Indices.SustainabilityForecast != 60 {
		t.Fatalf("unexpected indices %+v", got.Indices)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetLatestBySessionNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, session_id, user_id, answers_hash, result, indices, created_at").
		WithArgs("session-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "user_id", "answers_hash", "result", "indices", "created_at"}))

	if _, err := repo.GetLatestBySession(context.Background(), "session-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByUserClampsLimit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "session_id", "user_id", "answers_hash", "result", "indices", "created_at"}).
		AddRow("report-1", "session-1", "guest:abc", "deadbeef", `{}`, `{}`, now)
	mock.ExpectQuery("SELECT id, session_id, user_id, answers_hash, result, indices, created_at").
		WithArgs("guest:abc", 100, 0).
		WillReturnRows(rows)

	list, err := repo.ListByUser(context.Background(), "guest:abc", 500, -1)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(list) != 1 || list[0].ID != "report-1" {
		t.Fatalf("unexpected list %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
