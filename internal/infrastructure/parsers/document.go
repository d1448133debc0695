package parsers

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/weft-dev/weft/internal/domain/entities"
)

// frontMatterDelim separates the YAML header from the document body.
const frontMatterDelim = "---"

// frontMatter is the YAML header of a narrative document.
type frontMatter struct {
	Title   string `yaml:"title"`
	Chapter int    `yaml:"chapter,omitempty"`
	Slug    string `yaml:"slug,omitempty"`
}

// ParseDocument reads a rendered narrative document: an optional YAML front
// matter block followed by an HTML body. The name (usually the file name
// without extension) is the fallback for title and slug.
func ParseDocument(r io.Reader, name string) (*entities.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	fm, body, err := splitFrontMatter(string(data))
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", name, err)
	}

	if fm.Title == "" {
		fm.Title = name
	}
	if fm.Slug == "" {
		fm.Slug = entities.Slugify(fm.Title)
	}

	root, err := parseBody(body)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", name, err)
	}

	return &entities.Document{
		Title:   fm.Title,
		Chapter: fm.Chapter,
		Slug:    fm.Slug,
		Root:    root,
	}, nil
}

// splitFrontMatter cuts the YAML header off the document source.
func splitFrontMatter(src string) (frontMatter, string, error) {
	var fm frontMatter
	trimmed := strings.TrimLeft(src, "\n\r ")
	if !strings.HasPrefix(trimmed, frontMatterDelim) {
		return fm, src, nil
	}
	rest := trimmed[len(frontMatterDelim):]
	end := strings.Index(rest, "\n"+frontMatterDelim)
	if end < 0 {
		return fm, "", fmt.Errorf("unterminated front matter")
	}
	header := rest[:end]
	body := rest[end+len(frontMatterDelim)+1:]
	if i := strings.Index(body, "\n"); i >= 0 {
		body = body[i+1:]
	} else {
		body = ""
	}
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return fm, "", fmt.Errorf("parsing front matter: %w", err)
	}
	return fm, body, nil
}

// parseBody parses an HTML fragment and returns its body element.
func parseBody(src string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	body := findElement(doc, "body")
	if body == nil {
		return nil, fmt.Errorf("parsed HTML has no body")
	}
	return body, nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// RenderDocument writes the document body's inner HTML.
func RenderDocument(w io.Writer, doc *entities.Document) error {
	for c := doc.Root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return fmt.Errorf("rendering document %s: %w", doc.Slug, err)
		}
	}
	return nil
}
