package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindWordMatches(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		label    string
		expected []Span
	}{
		{
			name:     "single whole word",
			text:     "The harbour at dusk",
			label:    "harbour",
			expected: []Span{{Start: 4, End: 11}},
		},
		{
			name:     "label inside longer word is not a match",
			text:     "An Article about nothing",
			label:    "Art",
			expected: nil,
		},
		{
			name:     "label at start and end of text",
			text:     "Art imitates Art",
			label:    "Art",
			expected: []Span{{Start: 0, End: 3}, {Start: 13, End: 16}},
		},
		{
			name:     "punctuation is a boundary",
			text:     "He saw Art, then left.",
			label:    "Art",
			expected: []Span{{Start: 7, End: 10}},
		},
		{
			name:     "multi-word label",
			text:     "met James Minahan there",
			label:    "James Minahan",
			expected: []Span{{Start: 4, End: 17}},
		},
		{
			name:     "matches do not overlap",
			text:     "aba aba",
			label:    "aba",
			expected: []Span{{Start: 0, End: 3}, {Start: 4, End: 7}},
		},
		{
			name:     "digit binds to the word",
			text:     "Pier 14b is closed",
			label:    "Pier 14",
			expected: nil,
		},
		{
			name:     "unicode letter binds to the word",
			text:     "Caféhaus",
			label:    "Café",
			expected: nil,
		},
		{
			name:     "unicode boundary allows match",
			text:     "im Café – später",
			label:    "Café",
			expected: []Span{{Start: 3, End: 8}},
		},
		{
			name:     "empty label",
			text:     "anything",
			label:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, findWordMatches(tt.text, tt.label))
		})
	}
}

func TestLastWords(t *testing.T) {
	assert.Equal(t, []string{"c", "d", "e"}, lastWords("a b c d e", 3))
	assert.Equal(t, []string{"a", "b"}, lastWords("  a   b  ", 5))
	assert.Empty(t, lastWords("", 5))
}

func TestFirstWords(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, firstWords("a b c d e", 3))
	assert.Equal(t, []string{"a", "b"}, firstWords("a b", 5))
	assert.Empty(t, firstWords("   ", 5))
}
