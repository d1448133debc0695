package services

import (
	"strings"

	"golang.org/x/net/html"
)

// Attribute names that tie rendered markup back to the entity catalogue.
const (
	attrEntity     = "data-entity"
	attrCollection = "data-collection"
	attrAuto       = "data-auto"
	attrIgnore     = "data-entity-ignore"
)

// blockTags are the paragraph-equivalent units mentions and auto-linking
// operate on.
var blockTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "li": true, "dt": true, "dd": true, "td": true, "th": true,
	"blockquote": true, "figcaption": true,
}

// skipTags never take part in auto-linking.
var skipTags = map[string]bool{
	"a": true, "code": true, "pre": true, "script": true, "style": true,
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := getAttr(n, key)
	return ok
}

// textContent returns the concatenated text of n's subtree, markup stripped.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// children detaches and returns n's child nodes.
func children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		out = append(out, c)
	}
	return out
}

// setChildren replaces n's child list. Appending detached nodes one by one
// keeps every node boundary exactly as built; adjacent text nodes are never
// merged.
func setChildren(n *html.Node, nodes []*html.Node) {
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
	}
	for _, c := range nodes {
		n.AppendChild(c)
	}
}

// walk visits every node of the subtree in document order. Returning false
// from fn prunes the node's children.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

// blocks returns the leaf block elements of the tree in document order. A
// block containing another block (a blockquote holding paragraphs) is not a
// leaf; only its inner blocks are returned.
func blocks(root *html.Node) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && blockTags[n.Data] && !hasBlockDescendant(n) {
			out = append(out, n)
			return false
		}
		return true
	})
	return out
}

func hasBlockDescendant(n *html.Node) bool {
	found := false
	for c := n.FirstChild; c != nil && !found; c = c.NextSibling {
		walk(c, func(d *html.Node) bool {
			if d.Type == html.ElementNode && blockTags[d.Data] {
				found = true
				return false
			}
			return true
		})
	}
	return found
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func element(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: 0}
}
