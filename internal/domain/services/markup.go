package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/ports"
)

// Marker element names consumed from source documents.
const (
	markerTag = "entity-ref"
	ignoreTag = "entity-ignore"
)

// LabelMarkupEngine resolves explicit entity markers in a document and then
// auto-links every further textual occurrence of each marked label.
type LabelMarkupEngine struct {
	bc *BuildContext
}

// NewLabelMarkupEngine creates a new markup engine.
func NewLabelMarkupEngine(bc *BuildContext) *LabelMarkupEngine {
	return &LabelMarkupEngine{bc: bc}
}

// ResolveMarkers turns <entity-ref> elements into entity links and
// <entity-ignore> elements into ignore spans. A marker that cannot be
// resolved renders as plain unlinked content and raises an advisory.
func (e *LabelMarkupEngine) ResolveMarkers(ctx context.Context, doc *entities.Document) error {
	var markers []*html.Node
	walk(doc.Root, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		switch n.Data {
		case markerTag:
			markers = append(markers, n)
			return false
		case ignoreTag:
			// Ignoring suppresses auto-linking only; explicit markers
			// inside the span still resolve.
			markers = append(markers, n)
			return true
		}
		return true
	})
	for _, n := range markers {
		if n.Data == ignoreTag {
			n.Data = "span"
			setAttr(n, attrIgnore, "")
			continue
		}
		if err := e.resolveMarker(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (e *LabelMarkupEngine) resolveMarker(ctx context.Context, n *html.Node) error {
	name, _ := getAttr(n, "name")
	if name == "" {
		// The marker's own rendered content is the lookup name.
		name = strings.TrimSpace(textContent(n))
	}
	if name == "" {
		e.bc.report(entities.AdvisoryMalformedMarker, "", "marker has no lookup name")
		unwrap(n)
		return nil
	}
	rec, err := e.bc.Store.FindByName(ctx, name)
	if errors.Is(err, ports.ErrRecordNotFound) {
		e.bc.report(entities.AdvisoryUnresolvedReference, name,
			"marker does not match any record")
		unwrap(n)
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolving marker %q: %w", name, err)
	}

	info, _ := e.bc.Registry.Resolve(rec.Type)
	n.Data = "a"
	n.Attr = nil
	setAttr(n, "href", e.bc.PageURL(info.Collection, rec.Name))
	setAttr(n, "class", "entity-link")
	setAttr(n, attrEntity, rec.Name)
	setAttr(n, attrCollection, info.Collection)
	return nil
}

// unwrap replaces a node with its own children.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for _, c := range children(n) {
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}

// BuildIndex scans the document for resolved entity links and maps each
// visible label to its reference. A label carried by several markers keeps
// the most recent one; earlier links are already in place and are never
// reprocessed, so last-write-wins is safe.
func (e *LabelMarkupEngine) BuildIndex(doc *entities.Document) entities.ReferenceIndex {
	index := make(entities.ReferenceIndex)
	walk(doc.Root, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.Data != "a" {
			return true
		}
		name, ok := getAttr(n, attrEntity)
		if !ok {
			return true
		}
		label := textContent(n)
		if strings.TrimSpace(label) == "" {
			return false
		}
		collection, _ := getAttr(n, attrCollection)
		url, _ := getAttr(n, "href")
		index[label] = entities.Reference{
			Label:      label,
			Name:       name,
			Collection: collection,
			URL:        url,
		}
		return false
	})
	return index
}

// AutoLink finds every further plain-text occurrence of each indexed label
// and wraps it in a link to the label's reference. Longer labels run first
// so a shorter label that is a substring of a longer one can never fragment
// it; already-linked and ignored spans are never touched.
func (e *LabelMarkupEngine) AutoLink(doc *entities.Document) {
	labels := doc.Refs.Labels()
	for _, block := range blocks(doc.Root) {
		for _, label := range labels {
			e.linkChildren(block, label, doc.Refs[label])
		}
	}
}

// linkChildren rebuilds n's child list, replacing matched spans of text with
// link nodes. The rebuild produces a fresh sibling sequence, so an inserted
// link's text can never merge with adjacent original text nodes.
func (e *LabelMarkupEngine) linkChildren(n *html.Node, label string, ref entities.Reference) {
	kids := children(n)
	var out []*html.Node
	for _, c := range kids {
		switch {
		case c.Type == html.TextNode:
			out = append(out, e.linkText(c, label, ref)...)
		case c.Type == html.ElementNode && skippable(c):
			out = append(out, c)
		case c.Type == html.ElementNode && !hasSkippableDescendant(c) && textContent(c) == label:
			// An inline node that exactly equals the label keeps its
			// structure; its inner content is wrapped instead. A node
			// holding an existing link or an ignore span never qualifies.
			link := e.makeLink(ref, children(c))
			setChildren(c, []*html.Node{link})
			out = append(out, c)
		default:
			if c.Type == html.ElementNode {
				e.linkChildren(c, label, ref)
			}
			out = append(out, c)
		}
	}
	setChildren(n, out)
}

// linkText splits a text node around its whole-word matches of label,
// returning the replacement sibling sequence.
func (e *LabelMarkupEngine) linkText(n *html.Node, label string, ref entities.Reference) []*html.Node {
	matches := findWordMatches(n.Data, label)
	if len(matches) == 0 {
		return []*html.Node{n}
	}
	var out []*html.Node
	pos := 0
	for _, m := range matches {
		if m.Start > pos {
			out = append(out, textNode(n.Data[pos:m.Start]))
		}
		out = append(out, e.makeLink(ref, []*html.Node{textNode(n.Data[m.Start:m.End])}))
		pos = m.End
	}
	if pos < len(n.Data) {
		out = append(out, textNode(n.Data[pos:]))
	}
	return out
}

// makeLink builds an auto-inserted link node. The data-auto tag makes later
// label passes skip over it.
func (e *LabelMarkupEngine) makeLink(ref entities.Reference, content []*html.Node) *html.Node {
	link := element("a")
	setAttr(link, "href", ref.URL)
	setAttr(link, "class", "entity-link")
	setAttr(link, attrEntity, ref.Name)
	setAttr(link, attrCollection, ref.Collection)
	setAttr(link, attrAuto, "true")
	for _, c := range content {
		link.AppendChild(c)
	}
	return link
}

// skippable reports whether auto-linking must leave the element alone:
// existing links, ignore spans and code-like content.
func skippable(n *html.Node) bool {
	return skipTags[n.Data] || hasAttr(n, attrIgnore)
}

// hasSkippableDescendant reports whether any element under n is exempt from
// auto-linking.
func hasSkippableDescendant(n *html.Node) bool {
	found := false
	for c := n.FirstChild; c != nil && !found; c = c.NextSibling {
		walk(c, func(d *html.Node) bool {
			if d.Type == html.ElementNode && skippable(d) {
				found = true
				return false
			}
			return true
		})
	}
	return found
}

// AssignBlockIDs gives every block a stable paragraph id. Existing ids are
// kept; blocks without one get "p-<n>" in document order.
func (e *LabelMarkupEngine) AssignBlockIDs(doc *entities.Document) {
	for i, block := range blocks(doc.Root) {
		if !hasAttr(block, "id") {
			setAttr(block, "id", fmt.Sprintf("p-%d", i+1))
		}
	}
}
