package entities

// Graph key names shared with the JSON-LD codec. The codec contract is
// "produce a pre-compaction object using exactly these keys", so they are
// named once here.
const (
	KeyID               = "@id"
	KeyType             = "@type"
	KeyName             = "name"
	KeyImage            = "image"
	KeyMentionedBy      = "mentionedBy"
	KeyMentions         = "mentions"
	KeyMainEntityOfPage = "mainEntityOfPage"
)

// WebPageType is the graph type recorded for documents.
const WebPageType = "WebPage"

// ImageObjectType is the graph type that marks a record as an image.
const ImageObjectType = "ImageObject"

// PageRef is a document's identity as recorded inside the graph of every
// entity it mentions.
type PageRef struct {
	ID   string `json:"@id"`
	Name string `json:"name"`
	Type string `json:"@type"`
}

// GraphNode is the normalized linked-data representation of one record.
// A node is created once by the graph compiler and mutated exactly once
// more, when the assembler folds in its back-references.
type GraphNode struct {
	ID               string
	Type             string
	Name             string
	Properties       map[string]any
	MainEntityOfPage string

	// MentionedBy lists the documents that mention this entity. Nil when
	// the entity has no mentions: the serialized graph then has no
	// mentionedBy key at all.
	MentionedBy []PageRef

	// Contexts holds the mention snippets for page display. It is a side
	// channel and never part of the linked-data object.
	Contexts []Mention
}

// Object returns the pre-compaction graph object handed to the codec.
func (n *GraphNode) Object() map[string]any {
	obj := make(map[string]any, len(n.Properties)+5)
	for k, v := range n.Properties {
		obj[k] = v
	}
	obj[KeyID] = n.ID
	obj[KeyType] = n.Type
	obj[KeyName] = n.Name
	if n.MainEntityOfPage != "" {
		obj[KeyMainEntityOfPage] = n.MainEntityOfPage
	}
	if len(n.MentionedBy) > 0 {
		pages := make([]any, len(n.MentionedBy))
		for i, p := range n.MentionedBy {
			pages[i] = map[string]any{KeyID: p.ID, KeyName: p.Name, KeyType: p.Type}
		}
		obj[KeyMentionedBy] = pages
	}
	return obj
}
