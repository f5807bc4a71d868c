package sessions

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"mri-backend/internal/shared/server/middleware"
)

func setupSessionRouter(t *testing.T) (*gin.Engine, *MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := NewMemoryRepo()
	handler := NewHandler(&Service{Repo: repo})

	router := gin.New()
	router.Use(middleware.Auth("dev"))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return router, repo
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

func seedSession(t *testing.T, repo *MemoryRepo, userID string) string {
	t.Helper()
	svc := &Service{Repo: repo}
	session, err := svc.Start(context.Background(), userID)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return session.ID
}

func TestCreateSession(t *testing.T) {
	router, repo := setupSessionRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected session id, got empty")
	}
	if created.Status != StatusInProgress {
		t.Fatalf("expected in_progress, got %q", created.Status)
	}

	stored, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get stored session: %v", err)
	}
	if stored.UserID != "guest:test-guest" {
		t.Fatalf("expected guest owner, got %q", stored.UserID)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	router, _ := setupSessionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/missing", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestGetSessionHidesForeignSession(t *testing.T) {
	router, repo := setupSessionRouter(t)
	sessionID := seedSession(t, repo, "guest:someone-else")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/"+sessionID, nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign session, got %d", resp.Code)
	}
}

func TestSaveAnswers(t *testing.T) {
	router, repo := setupSessionRouter(t)
	sessionID := seedSession(t, repo, "guest:test-guest")

	payload := map[string]any{
		"answers": map[string]int{"1": 4, "6": 2},
		"profile": map[string]string{"relationshipDuration": "2-5yr"},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/"+sessionID+"/answers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var updated Session
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if updated.Answers[1] != 4 || updated.Answers[6] != 2 {
		t.Fatalf("unexpected answers %+v", updated.Answers)
	}
	if updated.Profile == nil || updated.Profile.RelationshipDuration != "2-5yr" {
		t.Fatalf("unexpected profile %+v", updated.Profile)
	}
}

func TestSaveAnswersRejectsBadValues(t *testing.T) {
	router, repo := setupSessionRouter(t)
	sessionID := seedSession(t, repo, "guest:test-guest")

	body, err := json.Marshal(map[string]any{"answers": map[string]int{"1": 9}})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/"+sessionID+"/answers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if errResp.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %q", errResp.Error.Code)
	}
}

func TestSaveAnswersConflictsOnCompletedSession(t *testing.T) {
	router, repo := setupSessionRouter(t)
	sessionID := seedSession(t, repo, "guest:test-guest")
	if err := repo.SetStatus(context.Background(), sessionID, StatusCompleted); err != nil {
		t.Fatalf("set status: %v", err)
	}

	body, err := json.Marshal(map[string]any{"answers": map[string]int{"1": 3}})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/"+sessionID+"/answers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestListSessionsRequiresLogin(t *testing.T) {
	router, _ := setupSessionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for guests, got %d", resp.Code)
	}
}
