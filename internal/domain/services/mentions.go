package services

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/weft-dev/weft/internal/domain/entities"
)

// windowSize is the number of context words kept on each side of an
// occurrence.
const windowSize = 5

// MentionExtractor locates every linked occurrence of an entity inside a
// document and produces a human-readable context snippet for each one.
type MentionExtractor struct{}

// NewMentionExtractor creates a new mention extractor.
func NewMentionExtractor() *MentionExtractor {
	return &MentionExtractor{}
}

// occurrence is one entity link inside a block, flattened to plain text.
type occurrence struct {
	before string
	label  string
	after  string
}

// Extract returns one Mention per linked occurrence of the entity in the
// document: blocks in document order, occurrences left to right within each
// block. The document must have finished its markup pass; the tree is only
// read here.
func (x *MentionExtractor) Extract(doc *entities.Document, entityName string) []entities.Mention {
	var out []entities.Mention
	for _, block := range blocks(doc.Root) {
		paragraphID, _ := getAttr(block, "id")
		for _, occ := range blockOccurrences(block, entityName) {
			out = append(out, entities.Mention{
				DocumentTitle:   doc.Title,
				DocumentChapter: doc.Chapter,
				DocumentURL:     doc.URL,
				ParagraphID:     paragraphID,
				Context:         occ.context(),
			})
		}
	}
	return out
}

// context builds the snippet: up to windowSize words on each side, markup
// stripped, the occurrence's own label emphasis-wrapped.
func (o occurrence) context() string {
	parts := lastWords(o.before, windowSize)
	parts = append(parts, "<em>"+o.label+"</em>")
	parts = append(parts, firstWords(o.after, windowSize)...)
	return strings.TrimSpace(strings.Join(parts, " "))
}

// blockOccurrences flattens a block into text segments and cuts one
// occurrence per link whose resolved name matches the entity.
func blockOccurrences(block *html.Node, entityName string) []occurrence {
	type segment struct {
		text string
		link int // occurrence index, -1 for plain text
	}
	var segs []segment
	nLinks := 0
	walk(block, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			segs = append(segs, segment{text: n.Data, link: -1})
			return false
		}
		if n.Type == html.ElementNode && n.Data == "a" {
			if name, ok := getAttr(n, attrEntity); ok && name == entityName {
				segs = append(segs, segment{text: textContent(n), link: nLinks})
				nLinks++
				return false
			}
		}
		return true
	})

	out := make([]occurrence, nLinks)
	for i := range out {
		var before, after strings.Builder
		seen := false
		for _, seg := range segs {
			if seg.link == i {
				out[i].label = seg.text
				seen = true
				continue
			}
			if seen {
				after.WriteString(seg.text)
			} else {
				before.WriteString(seg.text)
			}
		}
		out[i].before = before.String()
		out[i].after = after.String()
	}
	return out
}
