package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/mocks"
)

// markedUpDoc runs the full markup pass so the extractor sees what a build
// would see.
func markedUpDoc(t *testing.T, src string) *entities.Document {
	t.Helper()
	bc := newTestContext(testRecords(), &mocks.Reporter{})
	engine := NewLabelMarkupEngine(bc)
	doc := parseTestDoc(t, src)
	require.NoError(t, engine.ResolveMarkers(context.Background(), doc))
	engine.AssignBlockIDs(doc)
	doc.Refs = engine.BuildIndex(doc)
	engine.AutoLink(doc)
	return doc
}

func TestExtractFiveWordWindow(t *testing.T) {
	d := markedUpDoc(t,
		`<p>One two three four five six <entity-ref>James Minahan</entity-ref> alpha beta gamma delta epsilon zeta.</p>`)

	mentions := NewMentionExtractor().Extract(d, "James Minahan")

	require.Len(t, mentions, 1)
	assert.Equal(t,
		"two three four five six <em>James Minahan</em> alpha beta gamma delta epsilon",
		mentions[0].Context)
	assert.Equal(t, "p-1", mentions[0].ParagraphID)
	assert.Equal(t, "Arrival", mentions[0].DocumentTitle)
	assert.Equal(t, "https://example.org/arrival/", mentions[0].DocumentURL)
}

func TestExtractWindowTruncatesAtBlockEdges(t *testing.T) {
	d := markedUpDoc(t,
		`<p><entity-ref>James Minahan</entity-ref> waved once.</p>`)

	mentions := NewMentionExtractor().Extract(d, "James Minahan")

	require.Len(t, mentions, 1)
	assert.Equal(t, "<em>James Minahan</em> waved once.", mentions[0].Context)
}

func TestExtractMultipleOccurrencesInOrder(t *testing.T) {
	d := markedUpDoc(t,
		`<p><entity-ref>Rivermouth</entity-ref> first.</p><p>Then Rivermouth again.</p>`)

	mentions := NewMentionExtractor().Extract(d, "Rivermouth")

	require.Len(t, mentions, 2)
	assert.Equal(t, "p-1", mentions[0].ParagraphID)
	assert.Equal(t, "<em>Rivermouth</em> first.", mentions[0].Context)
	assert.Equal(t, "p-2", mentions[1].ParagraphID)
	assert.Equal(t, "Then <em>Rivermouth</em> again.", mentions[1].Context)
}

func TestExtractTwoLinksInOneBlock(t *testing.T) {
	d := markedUpDoc(t,
		`<p><entity-ref>Rivermouth</entity-ref> and then Rivermouth once more.</p>`)

	mentions := NewMentionExtractor().Extract(d, "Rivermouth")

	require.Len(t, mentions, 2)
	assert.Equal(t, "<em>Rivermouth</em> and then Rivermouth once more.", mentions[0].Context)
	assert.Equal(t, "Rivermouth and then <em>Rivermouth</em> once more.", mentions[1].Context)
}

func TestExtractIgnoresOtherEntitiesLinks(t *testing.T) {
	d := markedUpDoc(t,
		`<p><entity-ref>James Minahan</entity-ref> reached <entity-ref>Rivermouth</entity-ref>.</p>`)

	mentions := NewMentionExtractor().Extract(d, "Rivermouth")

	require.Len(t, mentions, 1)
	assert.Equal(t, "James Minahan reached <em>Rivermouth</em>.", mentions[0].Context)
}

func TestExtractNoLinksYieldsNoMentions(t *testing.T) {
	d := markedUpDoc(t, `<p>Nothing linked here.</p>`)

	mentions := NewMentionExtractor().Extract(d, "Rivermouth")

	assert.Empty(t, mentions)
}
