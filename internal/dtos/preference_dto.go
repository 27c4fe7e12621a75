package dtos

import "github.com/interimquest/repo-agent/internal/models"

// ExtractionRequest is the POST /extract body. Transcript is deliberately
// not required at the binding layer: a blank transcript yields an empty
// result, not a 400.
type ExtractionRequest struct {
	Transcript string   `json:"transcript"`
	UserID     string   `json:"user_id"`
	Context    []string `json:"context"`
}

// SavePreferenceRequest is the POST /validate body: one confirmed
// preference to persist for a user.
type SavePreferenceRequest struct {
	UserID         string                `json:"user_id" binding:"required"`
	PreferenceType models.PreferenceType `json:"preference_type" binding:"required"`
	Values         []string              `json:"values" binding:"required"`
	ValidationType models.ValidationType `json:"validation_type" binding:"required"`
	RawText        string                `json:"raw_text"`
}
