package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/weft-dev/weft/internal/domain/entities"
)

// DefaultConcurrency bounds how many documents are marked up at once when
// the caller does not choose a limit.
const DefaultConcurrency = 4

// Pipeline runs the two build phases around the hard barrier: every
// document finishes marker resolution and auto-linking before any entity
// graph is assembled, because assembly scans all documents for mentions.
type Pipeline struct {
	bc        *BuildContext
	markup    *LabelMarkupEngine
	compiler  *GraphCompiler
	extractor *MentionExtractor
	assembler *GraphAssembler
	limit     int
}

// NewPipeline creates a pipeline with the given concurrency limit for
// phase 1; limit <= 0 selects DefaultConcurrency.
func NewPipeline(bc *BuildContext, limit int) *Pipeline {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	return &Pipeline{
		bc:        bc,
		markup:    NewLabelMarkupEngine(bc),
		compiler:  NewGraphCompiler(bc),
		extractor: NewMentionExtractor(),
		assembler: NewGraphAssembler(),
		limit:     limit,
	}
}

// EntityResult ties one record to its assembled graph node.
type EntityResult struct {
	Record *entities.Record
	Node   *entities.GraphNode
}

// DocumentResult ties one document to its compiled graph object.
type DocumentResult struct {
	Document *entities.Document
	Graph    map[string]any
}

// BuildOutput is everything one pipeline run produces. Entities follow the
// record store's name order; documents keep their input order.
type BuildOutput struct {
	Entities  []*EntityResult
	Documents []*DocumentResult
}

// Run executes both phases over the given documents and every record in the
// store. Documents are mutated in place during phase 1 and read-only
// afterwards; each entity's graph node is written by exactly one goroutine.
func (p *Pipeline) Run(ctx context.Context, docs []*entities.Document) (*BuildOutput, error) {
	// Phase 1: per-document markup.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.limit)
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			if err := p.markup.ResolveMarkers(gctx, doc); err != nil {
				return err
			}
			p.markup.AssignBlockIDs(doc)
			doc.Refs = p.markup.BuildIndex(doc)
			p.markup.AutoLink(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("marking up documents: %w", err)
	}

	// Barrier: all documents are final before any entity is assembled.

	records, err := p.bc.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	// Phase 2: per-entity hydration and assembly.
	results := make([]*EntityResult, len(records))
	g2, g2ctx := errgroup.WithContext(ctx)
	g2.SetLimit(p.limit)
	for i, rec := range records {
		i, rec := i, rec
		g2.Go(func() error {
			node, err := p.compiler.Hydrate(g2ctx, rec)
			if err != nil {
				return err
			}
			var pages []entities.PageRef
			var mentions []entities.Mention
			for _, doc := range docs {
				ms := p.extractor.Extract(doc, rec.Name)
				if len(ms) == 0 {
					continue
				}
				pages = append(pages, PageRefFor(doc))
				mentions = append(mentions, ms...)
			}
			p.assembler.Assemble(node, pages, mentions)
			results[i] = &EntityResult{Record: rec, Node: node}
			return nil
		})
	}
	if err := g2.Wait(); err != nil {
		return nil, fmt.Errorf("assembling entity graphs: %w", err)
	}

	out := &BuildOutput{Entities: results}
	for _, doc := range docs {
		var mentioned []*entities.GraphNode
		for _, res := range results {
			if mentionsDocument(res.Node, doc.URL) {
				mentioned = append(mentioned, res.Node)
			}
		}
		graph := p.assembler.DocumentGraph(doc, mentioned)
		if err := p.assembler.EmbedPageData(doc, graph); err != nil {
			return nil, err
		}
		out.Documents = append(out.Documents, &DocumentResult{Document: doc, Graph: graph})
	}
	return out, nil
}

// mentionsDocument reports whether the assembled node carries a mention from
// the given document. Built from the same extraction that produced the
// node's mentionedBy list, so the two directions always agree.
func mentionsDocument(node *entities.GraphNode, docURL string) bool {
	for _, m := range node.Contexts {
		if m.DocumentURL == docURL {
			return true
		}
	}
	return false
}
