package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/mocks"
)

func pipelineDoc(t *testing.T, slug, src string) *entities.Document {
	t.Helper()
	doc := parseTestDoc(t, src)
	doc.Title = slug
	doc.Slug = slug
	doc.URL = "https://example.org/" + slug + "/"
	return doc
}

func TestPipelineRun(t *testing.T) {
	records := map[string]*entities.Record{
		"James Minahan": {
			Name: "James Minahan",
			Type: "person",
			Properties: map[string]entities.PropertyValue{
				"birthPlace": entities.RefValue(&entities.RecordRef{Name: "Rivermouth"}),
			},
		},
		"Rivermouth": {Name: "Rivermouth", Type: "place"},
	}
	reporter := &mocks.Reporter{}
	bc := newTestContext(records, reporter)

	chapterOne := pipelineDoc(t, "chapter-one",
		`<p><entity-ref>James Minahan</entity-ref> came ashore at <entity-ref>Rivermouth</entity-ref>.</p>
		 <p>James Minahan never left.</p>`)
	chapterTwo := pipelineDoc(t, "chapter-two",
		`<p>Rivermouth slept through the storm.</p>`)
	docs := []*entities.Document{chapterOne, chapterTwo}

	out, err := NewPipeline(bc, 2).Run(context.Background(), docs)
	require.NoError(t, err)

	// Entities follow the store's name order.
	require.Len(t, out.Entities, 2)
	james := out.Entities[0]
	rivermouth := out.Entities[1]
	assert.Equal(t, "James Minahan", james.Record.Name)
	assert.Equal(t, "Rivermouth", rivermouth.Record.Name)

	// James is mentioned by chapter one only: the auto-link in the second
	// paragraph counts, chapter two never names him.
	require.Len(t, james.Node.MentionedBy, 1)
	assert.Equal(t, chapterOne.URL, james.Node.MentionedBy[0].ID)
	assert.Len(t, james.Node.Contexts, 2)

	// Rivermouth was only marked in chapter one; chapter two has no marker,
	// so its plain-text occurrence there is not linked.
	require.Len(t, rivermouth.Node.MentionedBy, 1)
	assert.Equal(t, chapterOne.URL, rivermouth.Node.MentionedBy[0].ID)

	// Document graphs list exactly the entities whose mentions point back at
	// them, so the two directions always agree.
	require.Len(t, out.Documents, 2)
	assert.Same(t, chapterOne, out.Documents[0].Document)
	mentions, ok := out.Documents[0].Graph[entities.KeyMentions].([]any)
	require.True(t, ok)
	assert.Len(t, mentions, 2)

	_, hasMentions := out.Documents[1].Graph[entities.KeyMentions]
	assert.False(t, hasMentions)

	// Every document ships its embedded page data.
	for _, d := range out.Documents {
		assert.Contains(t, renderTestDoc(t, d.Document), `id="page-data"`)
	}

	assert.Empty(t, reporter.Advisories())
}

func TestPipelineMentionSymmetry(t *testing.T) {
	records := map[string]*entities.Record{
		"Rivermouth": {Name: "Rivermouth", Type: "place"},
	}
	bc := newTestContext(records, &mocks.Reporter{})

	docs := []*entities.Document{
		pipelineDoc(t, "one", `<p><entity-ref>Rivermouth</entity-ref>.</p>`),
		pipelineDoc(t, "two", `<p>Nothing here.</p>`),
	}

	out, err := NewPipeline(bc, 0).Run(context.Background(), docs)
	require.NoError(t, err)

	node := out.Entities[0].Node
	for _, docRes := range out.Documents {
		_, docMentions := docRes.Graph[entities.KeyMentions]
		backRef := false
		for _, p := range node.MentionedBy {
			if p.ID == docRes.Document.URL {
				backRef = true
			}
		}
		assert.Equal(t, docMentions, backRef,
			"document %s and entity must agree on the mention", docRes.Document.Slug)
	}
}

func TestPipelineEmptyInputs(t *testing.T) {
	bc := newTestContext(map[string]*entities.Record{}, &mocks.Reporter{})

	out, err := NewPipeline(bc, 0).Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Empty(t, out.Entities)
	assert.Empty(t, out.Documents)
}

func TestPipelineStoreErrorStopsBuild(t *testing.T) {
	bc := newTestContext(nil, &mocks.Reporter{})
	bc.Store = &mocks.RecordStore{Err: assert.AnError}

	_, err := NewPipeline(bc, 0).Run(context.Background(),
		[]*entities.Document{pipelineDoc(t, "one", `<p>Plain.</p>`)})

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
