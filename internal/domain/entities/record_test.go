package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple lowercase",
			input:    "rivermouth",
			expected: "rivermouth",
		},
		{
			name:     "uppercase converted",
			input:    "James Minahan",
			expected: "james-minahan",
		},
		{
			name:     "punctuation collapsed",
			input:    "St. Mary's Bay",
			expected: "st-mary-s-bay",
		},
		{
			name:     "consecutive separators collapse to one dash",
			input:    "a  --  b",
			expected: "a-b",
		},
		{
			name:     "leading and trailing separators trimmed",
			input:    "  The Harbour  ",
			expected: "the-harbour",
		},
		{
			name:     "digits kept",
			input:    "Pier 14",
			expected: "pier-14",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
