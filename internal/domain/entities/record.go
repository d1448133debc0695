// Package entities contains the core domain types for the cross-linking build.
package entities

import (
	"regexp"
	"strings"
)

var (
	// reNonSlug matches characters that cannot appear in a URL slug.
	reNonSlug = regexp.MustCompile(`[^a-z0-9]+`)
	// reMultipleDashes matches consecutive dashes.
	reMultipleDashes = regexp.MustCompile(`-+`)
)

// Record is a structured description of a real-world thing (person, place,
// event) keyed by a name that is unique across the whole record store.
// Records are immutable inputs for the duration of a build.
type Record struct {
	ID         string                   `json:"id,omitempty"` // explicit identifier; derived from the name when empty
	Name       string                   `json:"name"`
	Type       string                   `json:"type"`
	Properties map[string]PropertyValue `json:"properties,omitempty"`
}

// Slugify converts a record name into its URL slug form: lowercase, with
// runs of non-alphanumeric characters collapsed into single dashes.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = reNonSlug.ReplaceAllString(s, "-")
	s = reMultipleDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
