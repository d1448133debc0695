package entities

import (
	"fmt"

	"golang.org/x/net/html"
)

// Document is one rendered narrative document flowing through the build.
// Root is the parsed body of the document; it is mutated during the markup
// phase and read-only once that phase completes.
type Document struct {
	Title   string
	Chapter int
	Slug    string
	URL     string
	Root    *html.Node

	// Refs is the document's reference index, built during the markup pass.
	Refs ReferenceIndex
}

// GraphName returns the display name recorded in the document's graph node.
func (d *Document) GraphName() string {
	if d.Chapter > 0 {
		return fmt.Sprintf("Chapter %d: %s", d.Chapter, d.Title)
	}
	return d.Title
}
