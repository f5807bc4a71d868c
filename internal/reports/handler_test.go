package reports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"mri-backend/internal/sessions"
	"mri-backend/internal/shared/server/middleware"
)

func setupReportRouter(t *testing.T) (*gin.Engine, *Service, *sessions.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, sessionSvc := newTestService(t)
	handler := NewHandler(svc)

	router := gin.New()
	router.Use(middleware.Auth("dev"))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return router, svc, sessionSvc
}

func addGuestHeader(req *http.Request) {
	req.Header.Set("X-Guest-Id", "test-guest")
}

func TestScoreSession(t *testing.T) {
	router, _, sessionSvc := setupReportRouter(t)
	sessionID := seedAnsweredSession(t, sessionSvc, "guest:test-guest")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+sessionID+"/score", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID     string `json:"id"`
		Result struct {
			DominantLens string `json:"dominantLens"`
			Preview      struct {
				Headline string `json:"headline"`
			} `json:"preview"`
		} `json:"result"`
		Indices struct {
			SustainabilityForecast int `json:"sustainability_forecast"`
		} `json:"indices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected report id")
	}
	if created.Result.DominantLens == "" {
		t.Fatalf("expected dominant lens")
	}
	if created.Result.Preview.Headline == "" {
		t.Fatalf("expected preview headline")
	}
	if created.Indices.SustainabilityForecast == 0 {
		t.Fatalf("expected supplemental indices")
	}
}

func TestScoreUnknownSession(t *testing.T) {
	router, _, _ := setupReportRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/missing/score", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestGetReport(t *testing.T) {
	router, svc, sessionSvc := setupReportRouter(t)
	sessionID := seedAnsweredSession(t, sessionSvc, "guest:test-guest")
	report, err := svc.Generate(context.Background(), "guest:test-guest", sessionID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/"+report.ID, nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var got Report
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != report.ID {
		t.Fatalf("expected report %s, got %s", report.ID, got.ID)
	}
	if len(got.Result.Dimensions) != 5 {
		t.Fatalf("expected 5 scored dimensions, got %d", len(got.Result.Dimensions))
	}
}

func TestGetReportHidesForeignReport(t *testing.T) {
	router, svc, sessionSvc := setupReportRouter(t)
	sessionID := seedAnsweredSession(t, sessionSvc, "guest:someone-else")
	report, err := svc.Generate(context.Background(), "guest:someone-else", sessionID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/"+report.ID, nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for foreign report, got %d", resp.Code)
	}
}

func TestPreviewReport(t *testing.T) {
	router, svc, sessionSvc := setupReportRouter(t)
	sessionID := seedAnsweredSession(t, sessionSvc, "guest:test-guest")
	report, err := svc.Generate(context.Background(), "guest:test-guest", sessionID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/"+report.ID+"/preview", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var preview struct {
		ReportID string `json:"reportId"`
		Preview  struct {
			Headline string `json:"headline"`
		} `json:"preview"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&preview); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if preview.ReportID != report.ID {
		t.Fatalf("expected reportId %s, got %s", report.ID, preview.ReportID)
	}
	if preview.Preview.Headline == "" {
		t.Fatalf("expected preview headline")
	}
}

func TestListReportsRequiresLogin(t *testing.T) {
	router, _, _ := setupReportRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for guests, got %d", resp.Code)
	}
}

func TestInsightsCatalog(t *testing.T) {
	router, _, _ := setupReportRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights/catalog", nil)
	addGuestHeader(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var catalog []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(catalog) != 12 {
		t.Fatalf("expected 12 definitions, got %d", len(catalog))
	}
}
