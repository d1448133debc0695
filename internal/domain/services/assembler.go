package services

import (
	"encoding/json"
	"fmt"

	"github.com/weft-dev/weft/internal/domain/entities"
)

// GraphAssembler folds a build's mention results back into entity graphs
// and builds the document-side graphs.
type GraphAssembler struct{}

// NewGraphAssembler creates a new graph assembler.
func NewGraphAssembler() *GraphAssembler {
	return &GraphAssembler{}
}

// Assemble appends the documents that mention the entity to its graph's
// mentionedBy list and attaches the mention contexts as page-display data.
// An entity nobody mentions keeps a nil MentionedBy, so the serialized
// graph carries no mentionedBy key at all. Assemble must run exactly once
// per entity per build; running it again would duplicate entries.
func (a *GraphAssembler) Assemble(node *entities.GraphNode, pages []entities.PageRef, mentions []entities.Mention) {
	if len(pages) > 0 {
		node.MentionedBy = append(node.MentionedBy, pages...)
	}
	node.Contexts = append(node.Contexts, mentions...)
}

// PageRefFor returns the document's identity as recorded inside the graphs
// of the entities it mentions.
func PageRefFor(doc *entities.Document) entities.PageRef {
	return entities.PageRef{ID: doc.URL, Name: doc.GraphName(), Type: entities.WebPageType}
}

// DocumentGraph builds the document's own graph object: a WebPage node
// listing the full graph of every entity the document mentions.
func (a *GraphAssembler) DocumentGraph(doc *entities.Document, mentioned []*entities.GraphNode) map[string]any {
	obj := map[string]any{
		entities.KeyID:   doc.URL,
		entities.KeyType: entities.WebPageType,
		entities.KeyName: doc.GraphName(),
	}
	if len(mentioned) > 0 {
		nodes := make([]any, len(mentioned))
		for i, n := range mentioned {
			nodes[i] = n.Object()
		}
		obj[entities.KeyMentions] = nodes
	}
	return obj
}

// EmbedPageData inserts the document graph into the document tree as a
// script block with id "page-data", so the rendered page ships its own
// linked data.
func (a *GraphAssembler) EmbedPageData(doc *entities.Document, graph map[string]any) error {
	data, err := json.Marshal(graph)
	if err != nil {
		return fmt.Errorf("marshaling page data for %s: %w", doc.Slug, err)
	}
	script := element("script")
	setAttr(script, "type", "application/ld+json")
	setAttr(script, "id", "page-data")
	script.AppendChild(textNode(string(data)))
	doc.Root.AppendChild(script)
	return nil
}
