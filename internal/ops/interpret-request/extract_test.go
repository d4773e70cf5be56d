package interpretrequest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{
			name:     "bare object",
			text:     `{"value": 5, "from_unit": "feet"}`,
			expected: `{"value": 5, "from_unit": "feet"}`,
			found:    true,
		},
		{
			name: "markdown fence with language",
			text: "```json\n{\"value\": 5}\n```",
			expected: `{"value": 5}`,
			found:    true,
		},
		{
			name: "markdown fence without language",
			text: "```\n{\"value\": 5}\n```",
			expected: `{"value": 5}`,
			found:    true,
		},
		{
			name:     "prose before and after",
			text:     `Sure! Here is the JSON you asked for: {"value": 5} Hope that helps.`,
			expected: `{"value": 5}`,
			found:    true,
		},
		{
			name:     "nested object",
			text:     `{"outer": {"inner": [1, 2]}} trailing`,
			expected: `{"outer": {"inner": [1, 2]}}`,
			found:    true,
		},
		{
			name:     "array value",
			text:     `[{"value": 1}, {"value": 2}]`,
			expected: `[{"value": 1}, {"value": 2}]`,
			found:    true,
		},
		{
			name:     "braces inside string literal",
			text:     `{"note": "braces {here} do not count", "value": 5}`,
			expected: `{"note": "braces {here} do not count", "value": 5}`,
			found:    true,
		},
		{
			name:     "escaped quote inside string literal",
			text:     `{"note": "a \" quote and a } brace", "value": 5}`,
			expected: `{"note": "a \" quote and a } brace", "value": 5}`,
			found:    true,
		},
		{
			name:  "truncated object",
			text:  `{"value": 5, "from_unit": "feet"`,
			found: false,
		},
		{
			name:  "no JSON at all",
			text:  "I could not parse that request.",
			found: false,
		},
		{
			name:  "empty text",
			text:  "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate, ok := ExtractJSON(tt.text)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, candidate)
			}
		})
	}
}

func TestExtractJSON_CandidateUnmarshals(t *testing.T) {
	text := "```json\n{\n    \"value\": 5,\n    \"from_unit\": \"feet\",\n    \"to_unit\": \"meters\",\n    \"category\": \"Length\"\n}\n```"

	candidate, ok := ExtractJSON(text)
	require.True(t, ok)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(candidate), &parsed))
	assert.Equal(t, "feet", parsed["from_unit"])
	assert.Equal(t, "Length", parsed["category"])
}
