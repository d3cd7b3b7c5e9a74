package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON_CleanObjectUnchanged(t *testing.T) {
	raw := `{"trip_overview":{"destination":"Paris"},"itinerary":[{"day":1}]}`

	got, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, got)

	// Round-trip: extraction of already-serialized JSON is the identity.
	var before, after map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &before))
	require.NoError(t, json.Unmarshal([]byte(got), &after))
	assert.Equal(t, before, after)
}

func TestExtractJSON_MarkdownFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"day\": 1}\n```"},
		{"bare fence", "```\n{\"day\": 1}\n```"},
		{"fence with whitespace", "  ```json\n{\"day\": 1}\n```  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			require.NoError(t, err)
			assert.JSONEq(t, `{"day": 1}`, got)
		})
	}
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	raw := "Here is your itinerary! I hope you enjoy Paris.\n" +
		`{"trip_overview":{"destination":"Paris"}}` +
		"\nLet me know if you want changes."

	got, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"trip_overview":{"destination":"Paris"}}`, got)
}

func TestExtractJSON_PicksLongestSpan(t *testing.T) {
	// A fragment of the answer echoed in an aside must lose to the full
	// document even though both parse.
	fragment := `{"day": 1}`
	full := `{"trip_overview":{"destination":"Rome"},"itinerary":[{"day": 1},{"day": 2}]}`
	raw := "The first day looks like " + fragment + " and the full plan is:\n" + full

	got, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.JSONEq(t, full, got)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `noise before {"note":"use {curly} braces and a \" quote","n":1} noise after`

	got, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"note":"use {curly} braces and a \" quote","n":1}`, got)
}

func TestExtractJSON_ProseBracesLongerThanDocument(t *testing.T) {
	// Matched braces in prose can form a span longer than the document
	// itself; the unparseable span must lose to the shorter real one.
	raw := "Remember {when writing templates, wrap every variable placeholder " +
		"in braces generously and consistently} " +
		`{"trip_overview":{"destination":"Rome"}}`

	got, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"trip_overview":{"destination":"Rome"}}`, got)
}

func TestExtractJSON_QuotedBraceInProse(t *testing.T) {
	raw := `Wrap values like "{" and "}" in your template. {"day":1}`

	got, err := ExtractJSON(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":1}`, got)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"plain prose", "Sorry, I can't produce an itinerary for that request."},
		{"unbalanced brace", `{"trip_overview": {"destination": "Paris"`},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractJSON(tt.raw)
			assert.ErrorIs(t, err, ErrExtractionFailed)
		})
	}
}
