package icebreakers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"icebreaker-backend/internal/profile"
	"icebreaker-backend/internal/shared/server/respond"
)

const (
	defaultSuggestCount = 5
	maxSuggestCount     = 20
)

// Handler wires HTTP handlers to the icebreaker service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches icebreaker routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles/analyze", h.analyzeProfile)
	rg.POST("/icebreakers/suggest", h.suggest)
	rg.POST("/icebreakers/targeted", h.targeted)
	rg.DELETE("/sessions/:id", h.clearSession)
}

type suggestRequest struct {
	Profile   profile.RawProfile `json:"profile"`
	SessionID string             `json:"sessionId"`
	Count     *int               `json:"count"`
}

type targetedRequest struct {
	suggestRequest
	Criteria Criteria `json:"criteria"`
}

func (h *Handler) analyzeProfile(c *gin.Context) {
	var raw profile.RawProfile
	if err := c.ShouldBindJSON(&raw); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid profile payload", nil)
		return
	}
	respond.OK(c, h.Svc.AnalyzeProfile(raw))
}

func (h *Handler) suggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid suggest payload", nil)
		return
	}
	count, ok := resolveCount(c, req.Count)
	if !ok {
		return
	}

	pctx := h.Svc.AnalyzeProfile(req.Profile)
	questions, err := h.Svc.SelectDiverse(c.Request.Context(), pctx, req.SessionID, count)
	if err != nil {
		respondSelectionError(c, err)
		return
	}

	respond.OK(c, gin.H{
		"icebreakers": questions,
		"summary":     h.Svc.Summary(pctx),
		"sessionId":   sessionOrDefault(req.SessionID),
	})
}

func (h *Handler) targeted(c *gin.Context) {
	var req targetedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid targeted payload", nil)
		return
	}
	count, ok := resolveCount(c, req.Count)
	if !ok {
		return
	}

	pctx := h.Svc.AnalyzeProfile(req.Profile)
	questions, err := h.Svc.SelectTargeted(c.Request.Context(), req.Criteria, pctx, req.SessionID, count)
	if err != nil {
		respondSelectionError(c, err)
		return
	}

	respond.OK(c, gin.H{
		"icebreakers": questions,
		"summary":     h.Svc.Summary(pctx),
		"sessionId":   sessionOrDefault(req.SessionID),
	})
}

func (h *Handler) clearSession(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "session id is required", nil)
		return
	}
	h.Svc.ClearSession(sessionID)
	respond.OK(c, gin.H{"cleared": sessionID})
}

func resolveCount(c *gin.Context, raw *int) (int, bool) {
	if raw == nil {
		return defaultSuggestCount, true
	}
	count := *raw
	if count <= 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "count must be positive", nil)
		return 0, false
	}
	if count > maxSuggestCount {
		count = maxSuggestCount
	}
	return count, true
}

func respondSelectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCount), errors.Is(err, ErrInvalidCriteria):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to select icebreakers", nil)
	}
}

func sessionOrDefault(sessionID string) string {
	return normalizeSessionID(sessionID)
}
