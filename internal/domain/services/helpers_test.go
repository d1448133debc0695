package services

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/stretchr/testify/require"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/mocks"
	"github.com/weft-dev/weft/internal/domain/ports"
)

// testTypes is the registry used across the service tests.
func testTypes() map[string]ports.TypeInfo {
	return map[string]ports.TypeInfo{
		"person": {GraphType: "Person", Collection: "people", Template: "person.html"},
		"place":  {GraphType: "Place", Collection: "places", Template: "place.html"},
		"image":  {GraphType: "ImageObject", Collection: "images"},
	}
}

func newTestContext(records map[string]*entities.Record, reporter *mocks.Reporter) *BuildContext {
	return &BuildContext{
		Store:    &mocks.RecordStore{Records: records},
		Registry: &mocks.TypeRegistry{Types: testTypes()},
		Reporter: reporter,
		SiteURL:  "https://example.org",
		BaseURL:  "/",
	}
}

// parseTestDoc parses an HTML fragment into a Document rooted at its body.
func parseTestDoc(t *testing.T, src string) *entities.Document {
	t.Helper()
	root, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	body := findTestElement(root, "body")
	require.NotNil(t, body)
	return &entities.Document{
		Title: "Arrival",
		Slug:  "arrival",
		URL:   "https://example.org/arrival/",
		Root:  body,
	}
}

func findTestElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTestElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// renderTestDoc renders the document body's inner HTML for assertions.
func renderTestDoc(t *testing.T, doc *entities.Document) string {
	t.Helper()
	var b strings.Builder
	for c := doc.Root.FirstChild; c != nil; c = c.NextSibling {
		require.NoError(t, html.Render(&b, c))
	}
	return b.String()
}
