package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentWithFrontMatter(t *testing.T) {
	src := `---
title: Arrival
chapter: 1
---
<p>James Minahan came ashore.</p>`

	doc, err := ParseDocument(strings.NewReader(src), "chapter-one")
	require.NoError(t, err)

	assert.Equal(t, "Arrival", doc.Title)
	assert.Equal(t, 1, doc.Chapter)
	assert.Equal(t, "arrival", doc.Slug)
	require.NotNil(t, doc.Root)

	var rendered strings.Builder
	require.NoError(t, RenderDocument(&rendered, doc))
	assert.Equal(t, "<p>James Minahan came ashore.</p>", rendered.String())
}

func TestParseDocumentExplicitSlug(t *testing.T) {
	src := `---
title: Arrival
slug: the-arrival
---
<p>x</p>`

	doc, err := ParseDocument(strings.NewReader(src), "chapter-one")
	require.NoError(t, err)

	assert.Equal(t, "the-arrival", doc.Slug)
}

func TestParseDocumentWithoutFrontMatter(t *testing.T) {
	doc, err := ParseDocument(strings.NewReader("<p>Plain body.</p>"), "appendix-notes")
	require.NoError(t, err)

	assert.Equal(t, "appendix-notes", doc.Title)
	assert.Equal(t, "appendix-notes", doc.Slug)
	assert.Zero(t, doc.Chapter)
}

func TestParseDocumentUnterminatedFrontMatter(t *testing.T) {
	_, err := ParseDocument(strings.NewReader("---\ntitle: x\n<p>no closer</p>"), "bad")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated front matter")
}

func TestParseDocumentBadFrontMatterYAML(t *testing.T) {
	_, err := ParseDocument(strings.NewReader("---\ntitle: [unclosed\n---\n<p>x</p>"), "bad")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing front matter")
}
