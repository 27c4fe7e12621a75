package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/interimquest/repo-agent/internal/dtos"
	"github.com/interimquest/repo-agent/internal/models"
	"github.com/interimquest/repo-agent/internal/services"
)

// PreferenceStore is what the handler needs from the persistence layer.
// Kept as an interface so handler tests run against a fake instead of
// Postgres.
type PreferenceStore interface {
	Save(ctx context.Context, req *dtos.SavePreferenceRequest) ([]services.SavedPreference, error)
	List(ctx context.Context, userID string) ([]models.UserPreference, error)
}

// PreferenceHandler owns the HTTP surface of the repo agent.
type PreferenceHandler struct {
	Extraction *services.ExtractionService
	// Store is nil when DATABASE_URL is not configured; the persistence
	// endpoints then report the missing configuration.
	Store PreferenceStore
	Model string
}

// NewPreferenceHandler creates the handler with dependencies.
func NewPreferenceHandler(extraction *services.ExtractionService, store PreferenceStore, model string) *PreferenceHandler {
	return &PreferenceHandler{
		Extraction: extraction,
		Store:      store,
		Model:      model,
	}
}

// Extract is the POST /extract endpoint. Extraction failures never surface
// as an error status here: the orchestrator degrades them to an empty
// result, so the only 4xx is a malformed body.
func (h *PreferenceHandler) Extract(c *gin.Context) {
	var req dtos.ExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	result := h.Extraction.Extract(c.Request.Context(), req.Transcript, req.Context)
	c.JSON(http.StatusOK, result)
}

// Validate is the POST /validate endpoint: persist a confirmed preference.
// Unlike extraction, persistence failures are visible — a confirmed
// preference must not silently vanish.
func (h *PreferenceHandler) Validate(c *gin.Context) {
	var req dtos.SavePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if !req.PreferenceType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown preference_type: " + string(req.PreferenceType)})
		return
	}
	if !req.ValidationType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown validation_type: " + string(req.ValidationType)})
		return
	}

	if h.Store == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not configured"})
		return
	}

	saved, err := h.Store.Save(c.Request.Context(), &req)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "saved": saved})
}

// Preferences is the GET /preferences endpoint: everything stored for a
// user, newest first.
func (h *PreferenceHandler) Preferences(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query parameter is required"})
		return
	}

	if h.Store == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database not configured"})
		return
	}

	prefs, err := h.Store.List(c.Request.Context(), userID)
	if errors.Is(err, services.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "preferences": prefs})
}

// Health is the GET /health liveness endpoint.
func (h *PreferenceHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"agent":  "repo",
		"model":  h.Model,
	})
}
