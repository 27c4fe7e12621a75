package services

import (
	"context"
	"log"
	"strings"

	"github.com/interimquest/repo-agent/internal/models"
)

// maxContextTurns bounds how much prior conversation is forwarded to the
// model; older turns are silently dropped.
const maxContextTurns = 5

// ExtractionService orchestrates one extraction call: delegate to the
// Extractor, build a validation request per preference, aggregate the
// overall confirmation signal.
type ExtractionService struct {
	extractor Extractor
}

// NewExtractionService returns an orchestrator over the given extractor.
func NewExtractionService(extractor Extractor) *ExtractionService {
	return &ExtractionService{extractor: extractor}
}

// Extract runs the full pipeline for one transcript. Extraction is
// best-effort: any extractor failure degrades to an empty result instead
// of failing the caller's turn of conversation.
func (s *ExtractionService) Extract(ctx context.Context, transcript string, contextTurns []string) models.ExtractionResult {
	empty := models.ExtractionResult{
		Preferences:        []models.ExtractedPreference{},
		ValidationRequests: []models.ValidationRequest{},
		ShouldConfirm:      false,
	}

	if strings.TrimSpace(transcript) == "" {
		return empty
	}

	if len(contextTurns) > maxContextTurns {
		contextTurns = contextTurns[len(contextTurns)-maxContextTurns:]
	}

	preferences, err := s.extractor.Extract(ctx, transcript, contextTurns)
	if err != nil {
		log.Printf("[repo-agent] extraction failed, returning empty result: %v", err)
		return empty
	}

	requests := make([]models.ValidationRequest, 0, len(preferences))
	shouldConfirm := false
	for _, pref := range preferences {
		req := BuildValidationRequest(pref)
		if req.ValidationType == models.ValidationHard {
			shouldConfirm = true
		}
		requests = append(requests, req)
	}

	if preferences == nil {
		preferences = []models.ExtractedPreference{}
	}
	return models.ExtractionResult{
		Preferences:        preferences,
		ValidationRequests: requests,
		ShouldConfirm:      shouldConfirm,
	}
}
