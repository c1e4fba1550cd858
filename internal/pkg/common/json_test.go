package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", `Sure! {"a":1} Hope that helps.`, `{"a":1}`},
		{"no object at all", "nothing here", "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONObject(tt.in))
		})
	}
}

func TestQuoteJSONKeys(t *testing.T) {
	got := QuoteJSONKeys(`{title: "x", steps: ["a"]}`)
	assert.Equal(t, `{"title": "x", "steps": ["a"]}`, got)
}

func TestParseJSONRejectsTrailingData(t *testing.T) {
	var v map[string]interface{}
	err := ParseJSON(`{"a":1}{"b":2}`, &v)
	assert.Error(t, err)
}

func TestParseJSONRoundTrip(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	out, err := ToJSON(payload{Name: "x"})
	require.NoError(t, err)

	var back payload
	require.NoError(t, ParseJSON(out, &back))
	assert.Equal(t, "x", back.Name)
}
