package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/interimquest/repo-agent/internal/models"
)

// Hard (deal-breaking) confirmations get more time for a deliberate answer;
// soft ones are ambient and should not block the conversation.
const (
	softValidationTTL = 30 * time.Second
	hardValidationTTL = 120 * time.Second
)

// BuildValidationRequest turns one extracted preference into a user-facing
// confirmation prompt with an expiry. Pure: no side effects beyond the
// fresh request ID.
func BuildValidationRequest(pref models.ExtractedPreference) models.ValidationRequest {
	validationType := models.ValidationSoft
	if pref.RequiresHardValidation {
		validationType = models.ValidationHard
	}

	joined := strings.Join(pref.Values, ", ")

	var prompt string
	if validationType == models.ValidationHard {
		switch pref.Type {
		case models.PreferenceRole:
			prompt = fmt.Sprintf("Confirm: You only want %s roles?", joined)
		case models.PreferenceDayRate:
			prompt = fmt.Sprintf("Confirm rate: %s?", joined)
		case models.PreferenceLocation:
			prompt = fmt.Sprintf("Confirm: %s only?", joined)
		default:
			prompt = fmt.Sprintf("Confirm %s: %s?", pref.Type, joined)
		}
	} else {
		prompt = fmt.Sprintf("Adding: %s - %s", pref.Type, joined)
	}

	ttl := softValidationTTL
	if validationType == models.ValidationHard {
		ttl = hardValidationTTL
	}
	expiresAt := time.Now().Add(ttl)

	return models.ValidationRequest{
		ID:             uuid.NewString(),
		Preference:     pref,
		ValidationType: validationType,
		Prompt:         prompt,
		ExpiresAt:      &expiresAt,
	}
}
