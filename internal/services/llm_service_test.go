package services

import (
	"testing"

	"github.com/interimquest/repo-agent/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"[]", "[]"},
		{"```json\n[]\n```", "[]"},
		{"```\n[]\n```", "[]"},
		{"  [{\"type\":\"role\"}]  ", "[{\"type\":\"role\"}]"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stripFences(tc.in))
	}
}

func TestParsePreferences_Basic(t *testing.T) {
	raw := `[
		{"type": "role", "values": ["CTO"], "confidence": 0.95, "raw_text": "I only want CTO roles", "requires_hard_validation": true, "reason": "exclusive constraint"},
		{"type": "skill", "values": ["Python"], "confidence": 0.6, "raw_text": "I like Python"}
	]`
	prefs, err := parsePreferences(raw)
	require.NoError(t, err)
	require.Len(t, prefs, 2)

	assert.Equal(t, models.PreferenceRole, prefs[0].Type)
	assert.Equal(t, []string{"CTO"}, prefs[0].Values)
	assert.True(t, prefs[0].RequiresHardValidation)
	assert.Equal(t, "exclusive constraint", prefs[0].Reason)

	assert.Equal(t, models.PreferenceSkill, prefs[1].Type)
	assert.False(t, prefs[1].RequiresHardValidation)
}

func TestParsePreferences_Fenced(t *testing.T) {
	raw := "```json\n[{\"type\": \"location\", \"values\": [\"London\"], \"confidence\": 0.8, \"raw_text\": \"only London\"}]\n```"
	prefs, err := parsePreferences(raw)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, models.PreferenceLocation, prefs[0].Type)
}

func TestParsePreferences_DropsUnknownTypes(t *testing.T) {
	raw := `[
		{"type": "hobby", "values": ["chess"], "confidence": 0.9, "raw_text": "x"},
		{"type": "industry", "values": ["fintech"], "confidence": 0.7, "raw_text": "y"}
	]`
	prefs, err := parsePreferences(raw)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	assert.Equal(t, models.PreferenceIndustry, prefs[0].Type)
}

func TestParsePreferences_ClampsConfidence(t *testing.T) {
	raw := `[
		{"type": "role", "values": ["CEO"], "confidence": 1.4, "raw_text": "x"},
		{"type": "skill", "values": ["Go"], "confidence": -0.2, "raw_text": "y"}
	]`
	prefs, err := parsePreferences(raw)
	require.NoError(t, err)
	require.Len(t, prefs, 2)
	assert.Equal(t, 1.0, prefs[0].Confidence)
	assert.Equal(t, 0.0, prefs[1].Confidence)
}

func TestParsePreferences_Malformed(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"type": "role"}`} {
		_, err := parsePreferences(raw)
		assert.Error(t, err, "parsePreferences(%q) should fail", raw)
	}
}

func TestParsePreferences_EmptyArray(t *testing.T) {
	prefs, err := parsePreferences("[]")
	require.NoError(t, err)
	assert.Empty(t, prefs)
}
