package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"bare fence", "```\n[1,2]\n```", "[1,2]"},
		{"leading whitespace", "  ```json\n[]\n```  ", "[]"},
		{"single line fence", "```json[]```", "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  string
		found bool
	}{
		{"clean array", `[{"title":"a"}]`, `[{"title":"a"}]`, true},
		{"fenced array", "```json\n[1,2,3]\n```", "[1,2,3]", true},
		{"prose around array", `Here are the tasks: [{"title":"a"}] hope that helps`, `[{"title":"a"}]`, true},
		{"no array", "I could not produce any tasks.", "", false},
		{"broken json", `[{"title": }]`, "", false},
		{"empty input", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := extractJSONArray(tt.in)
			require.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	assert.Equal(t, "abc", truncateRunes("abcdef", 3))
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
}
