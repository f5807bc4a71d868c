package reports

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mri-backend/internal/insights"
	"mri-backend/internal/scoring"
	"mri-backend/internal/sessions"
	"mri-backend/internal/shared/metrics"
	"mri-backend/internal/shared/server/middleware"
	"mri-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches scoring and report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions/:id/score", h.score)
	rg.GET("/reports", h.list)
	rg.GET("/reports/:id", h.get)
	rg.GET("/reports/:id/preview", h.preview)
	rg.GET("/insights/catalog", h.catalog)
}

func (h *Handler) score(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	sessionID := c.Param("id")
	c.Set("sessionId", sessionID)

	report, err := h.Svc.Generate(c.Request.Context(), userID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		case errors.Is(err, scoring.ErrInvalidAnswer):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to score session", nil)
		}
		return
	}

	c.Set("reportId", report.ID)
	respond.Created(c, report)
}

func (h *Handler) get(c *gin.Context) {
	report, ok := h.fetch(c)
	if !ok {
		return
	}
	metrics.IncReportServed()
	respond.OK(c, report)
}

func (h *Handler) preview(c *gin.Context) {
	report, ok := h.fetch(c)
	if !ok {
		return
	}
	respond.OK(c, gin.H{
		"reportId":  report.ID,
		"preview":   report.Result.Preview,
		"createdAt": report.CreatedAt,
	})
}

func (h *Handler) fetch(c *gin.Context) (Report, bool) {
	userID := middleware.UserIDFromContext(c)
	reportID := c.Param("id")
	c.Set("reportId", reportID)

	report, err := h.Svc.Get(c.Request.Context(), userID, reportID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "report not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch report", nil)
		}
		return Report{}, false
	}
	return report, true
}

func (h *Handler) list(c *gin.Context) {
	if middleware.IsGuestFromContext(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list reports", nil)
		return
	}

	resp := make([]gin.H, 0, len(list))
	for _, report := range list {
		resp = append(resp, gin.H{
			"reportId":     report.ID,
			"sessionId":    report.SessionID,
			"dominantLens": report.Result.DominantLens,
			"headline":     report.Result.Preview.Headline,
			"createdAt":    report.CreatedAt,
		})
	}

	respond.OK(c, resp)
}

func (h *Handler) catalog(c *gin.Context) {
	respond.OK(c, insights.Catalog())
}
