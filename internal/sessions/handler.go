package sessions

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mri-backend/internal/scoring"
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

// RegisterRoutes attaches session routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.start)
	rg.GET("/sessions", h.list)
	rg.GET("/sessions/:id", h.get)
	rg.PUT("/sessions/:id/answers", h.saveAnswers)
}

func (h *Handler) start(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	session, err := h.Svc.Start(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create session", nil)
		return
	}

	c.Set("sessionId", session.ID)
	respond.Created(c, session)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	sessionID := c.Param("id")
	c.Set("sessionId", sessionID)

	session, err := h.Svc.Get(c.Request.Context(), userID, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch session", nil)
		}
		return
	}

	respond.OK(c, session)
}

type saveAnswersRequest struct {
	Answers map[int]int      `json:"answers"`
	Profile *scoring.Profile `json:"profile,omitempty"`
}

func (h *Handler) saveAnswers(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	sessionID := c.Param("id")
	c.Set("sessionId", sessionID)

	var req saveAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Svc.SaveAnswers(c.Request.Context(), userID, sessionID, req.Answers, req.Profile)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		case errors.Is(err, ErrCompleted):
			respond.Error(c, http.StatusConflict, "session_completed", "session already scored", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save answers", nil)
		}
		return
	}

	respond.OK(c, session)
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
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list sessions", nil)
		return
	}

	resp := make([]gin.H, 0, len(list))
	for _, session := range list {
		resp = append(resp, gin.H{
			"sessionId": session.ID,
			"status":    session.Status,
			"answered":  len(session.Answers),
			"createdAt": session.CreatedAt,
			"updatedAt": session.UpdatedAt,
		})
	}

	respond.OK(c, resp)
}
