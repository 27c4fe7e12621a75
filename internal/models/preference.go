package models

import (
	"fmt"
	"time"
)

// PreferenceType is the closed set of career preference categories the
// extraction agent can produce.
type PreferenceType string

const (
	PreferenceRole         PreferenceType = "role"
	PreferenceIndustry     PreferenceType = "industry"
	PreferenceLocation     PreferenceType = "location"
	PreferenceAvailability PreferenceType = "availability"
	PreferenceDayRate      PreferenceType = "day_rate"
	PreferenceSkill        PreferenceType = "skill"
)

// Valid reports whether p is one of the known preference types.
func (p PreferenceType) Valid() bool {
	switch p {
	case PreferenceRole, PreferenceIndustry, PreferenceLocation,
		PreferenceAvailability, PreferenceDayRate, PreferenceSkill:
		return true
	}
	return false
}

// ParsePreferenceType converts a wire string into a PreferenceType.
func ParsePreferenceType(s string) (PreferenceType, error) {
	p := PreferenceType(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown preference type %q", s)
	}
	return p, nil
}

// ValidationType describes how a preference must be confirmed by the user.
// "validated" is a terminal persisted state; extraction only ever produces
// soft or hard.
type ValidationType string

const (
	ValidationSoft      ValidationType = "soft"
	ValidationHard      ValidationType = "hard"
	ValidationValidated ValidationType = "validated"
)

// Valid reports whether v is one of the known validation types.
func (v ValidationType) Valid() bool {
	switch v {
	case ValidationSoft, ValidationHard, ValidationValidated:
		return true
	}
	return false
}

// ExtractedPreference is a single structured preference returned by the
// extraction agent.
type ExtractedPreference struct {
	Type                   PreferenceType `json:"type"`
	Values                 []string       `json:"values"`
	Confidence             float64        `json:"confidence"`
	RawText                string         `json:"raw_text"`
	RequiresHardValidation bool           `json:"requires_hard_validation"`
	Reason                 string         `json:"reason,omitempty"`
}

// ClampConfidence forces a confidence score into [0.0, 1.0].
func ClampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// ValidationRequest is a transient confirmation prompt built for one
// extracted preference. It is returned to the caller, never persisted;
// the expiry is advisory.
type ValidationRequest struct {
	ID             string              `json:"id"`
	Preference     ExtractedPreference `json:"preference"`
	ValidationType ValidationType      `json:"validation_type"`
	Prompt         string              `json:"prompt"`
	ExpiresAt      *time.Time          `json:"expires_at,omitempty"`
}

// ExtractionResult is the outcome of one extraction call.
// ValidationRequests is always the same length and order as Preferences.
type ExtractionResult struct {
	Preferences        []ExtractedPreference `json:"preferences"`
	ValidationRequests []ValidationRequest   `json:"validation_requests"`
	ShouldConfirm      bool                  `json:"should_confirm"`
}
