// file: internal/naming/sanitize_test.go
// version: 1.0.0
// guid: 8019b286-29d1-4f88-a848-ed04117d4b27

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"clean", "Let It Be", "Let It Be"},
		{"slash", "AC/DC", "AC DC"},
		{"every reserved char", `a\b/c:d*e?f"g<h>i|j`, "a b c d e f g h i j"},
		{"runs collapse", "What?  Why: Now", "What Why Now"},
		{"only reserved", `?*:`, ""},
		{"trims", "  <Intro>  ", "Intro"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		`  a // b :: c  `,
		"tab\tand\nnewline",
		`"quoted" <angle> |pipe|`,
		"\u00a0nbsp\u00a0",
		`\\server\share`,
	}

	for _, in := range inputs {
		once := Sanitize(in)
		assert.Equal(t, once, Sanitize(once), "input %q", in)
	}
}
