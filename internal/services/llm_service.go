package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/interimquest/repo-agent/internal/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Extractor is all the orchestrator needs from the model: text in,
// structured preferences out. Tests swap in a stub here so nothing
// touches the network.
type Extractor interface {
	Extract(ctx context.Context, transcript string, contextTurns []string) ([]models.ExtractedPreference, error)
}

const extractionPrompt = `You are a career preference extraction agent for Interim.Quest, a platform for interim executive roles in the UK.

Analyze the conversation transcript below and extract structured career preferences.

For each preference:
1. Identify type: role, industry, location, availability, day_rate, skill
2. Extract specific values
3. Assess confidence (0.0-1.0)
4. Determine if HARD validation is needed

HARD validation (requires_hard_validation=true) when:
- Constraints: "I only want...", "Must be...", "Nothing below..."
- Deal-breakers: "I won't consider...", "Definitely not..."
- Salary minimums: "At least £X", "Minimum of..."
- Location exclusivity: "Only London", "Has to be remote"

SOFT validation when:
- General interests: "I like tech companies"
- Flexible preferences: "Maybe 2-3 days"
- Nice-to-haves

Only extract EXPLICIT preferences, not inferred ones.

Respond with a JSON array only, no markdown code blocks. Each element:
{"type": "...", "values": ["..."], "confidence": 0.0, "raw_text": "...", "requires_hard_validation": false, "reason": "..."}

Return [] if nothing clear.

Extract preferences from:

%s`

// GeminiExtractor calls Google Gemini through langchaingo.
type GeminiExtractor struct {
	// hold the client so we don't recreate it on every request
	client llms.Model
}

// NewGeminiExtractor initializes the Gemini client.
func NewGeminiExtractor(ctx context.Context, apiKey, model string) (*GeminiExtractor, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiExtractor{client: llm}, nil
}

// Extract sends the transcript (plus prior context turns) to Gemini and
// parses the preferences out of the reply.
func (e *GeminiExtractor) Extract(ctx context.Context, transcript string, contextTurns []string) ([]models.ExtractedPreference, error) {
	input := transcript
	if len(contextTurns) > 0 {
		input += "\n\nPrevious context:\n" + strings.Join(contextTurns, "\n")
	}

	prompt := fmt.Sprintf(extractionPrompt, input)
	resp, err := llms.GenerateFromSinglePrompt(ctx, e.client, prompt)
	if err != nil {
		return nil, err
	}
	return parsePreferences(resp)
}

// stripFences removes markdown code fences from LLM output.
// Models wrap JSON in ```json blocks no matter what the prompt says.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// parsePreferences decodes the model reply. Unknown-type records get
// dropped rather than failing the whole batch; confidence is clamped.
func parsePreferences(raw string) ([]models.ExtractedPreference, error) {
	var prefs []models.ExtractedPreference
	if err := json.Unmarshal([]byte(stripFences(raw)), &prefs); err != nil {
		return nil, fmt.Errorf("malformed extraction response: %w", err)
	}

	out := make([]models.ExtractedPreference, 0, len(prefs))
	for _, p := range prefs {
		if !p.Type.Valid() {
			continue
		}
		p.Confidence = models.ClampConfidence(p.Confidence)
		out = append(out, p)
	}
	return out, nil
}
