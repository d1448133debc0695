package entities

// Mention is one occurrence of an entity link inside a document, with the
// textual context surrounding it. Mentions are produced per entity-document
// pair in document traversal order, then paragraph order, then occurrence
// order within the paragraph.
type Mention struct {
	DocumentTitle   string `json:"documentTitle"`
	DocumentChapter int    `json:"documentChapter,omitempty"`
	DocumentURL     string `json:"documentUrl"`
	ParagraphID     string `json:"paragraphId"`
	Context         string `json:"context"`
}
