package services

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a half-open byte range into a text node.
type Span struct {
	Start int
	End   int
}

// isWordRune reports whether r belongs to a word. Letters and digits bind;
// everything else (punctuation, whitespace, symbols) is a boundary. This is
// locale-independent: it relies on Unicode categories, not on any
// language-specific word list.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// findWordMatches returns the byte spans of every whole-word occurrence of
// label inside text, left to right, non-overlapping. An occurrence is
// whole-word when the runes immediately before and after it are not word
// runes, so "Art" never matches inside "Article".
func findWordMatches(text, label string) []Span {
	if label == "" {
		return nil
	}
	var out []Span
	for i := 0; i+len(label) <= len(text); {
		j := strings.Index(text[i:], label)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(label)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			out = append(out, Span{Start: start, End: end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		i = start + size
	}
	return out
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i == len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

// lastWords returns up to n trailing whitespace-separated words of s.
func lastWords(s string, n int) []string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[len(words)-n:]
	}
	return words
}

// firstWords returns up to n leading whitespace-separated words of s.
func firstWords(s string, n int) []string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return words
}
