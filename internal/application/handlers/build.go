// Package handlers contains application-level orchestration over the domain
// services.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/ports"
	"github.com/weft-dev/weft/internal/domain/services"
	"github.com/weft-dev/weft/internal/infrastructure/config"
	"github.com/weft-dev/weft/internal/infrastructure/parsers"
)

// BuildHandler runs the full cross-linking build for a site.
type BuildHandler struct {
	cfg      *config.Config
	store    ports.RecordStore
	registry ports.TypeRegistry
	reporter ports.Reporter
	codec    ports.GraphCodec
}

// NewBuildHandler creates a new build handler.
func NewBuildHandler(cfg *config.Config, store ports.RecordStore, registry ports.TypeRegistry, reporter ports.Reporter, codec ports.GraphCodec) *BuildHandler {
	return &BuildHandler{
		cfg:      cfg,
		store:    store,
		registry: registry,
		reporter: reporter,
		codec:    codec,
	}
}

// BuildResult summarizes one build.
type BuildResult struct {
	DocumentCount int
	EntityCount   int
	MentionCount  int
	SkippedPages  []string // entities whose unconfigured type blocked page output
	OutputDir     string
}

// Handle loads every document, runs the pipeline and writes the rendered
// documents and the compacted entity/document graphs. Codec failures abort
// the build; per-record problems only raise advisories.
func (h *BuildHandler) Handle(ctx context.Context, docsDir, outDir string) (*BuildResult, error) {
	bc := &services.BuildContext{
		Store:    h.store,
		Registry: h.registry,
		Reporter: h.reporter,
		SiteURL:  h.cfg.Site.URL,
		BaseURL:  h.cfg.Site.BaseURL,
	}

	docs, err := h.loadDocuments(bc, docsDir)
	if err != nil {
		return nil, err
	}

	pipeline := services.NewPipeline(bc, h.cfg.Build.Concurrency)
	out, err := pipeline.Run(ctx, docs)
	if err != nil {
		return nil, err
	}

	result := &BuildResult{
		DocumentCount: len(out.Documents),
		EntityCount:   len(out.Entities),
		OutputDir:     outDir,
	}

	for _, dr := range out.Documents {
		if err := h.writeDocument(outDir, dr); err != nil {
			return nil, err
		}
	}
	for _, er := range out.Entities {
		result.MentionCount += len(er.Node.Contexts)
		info, ok := h.registry.Resolve(er.Record.Type)
		if !ok {
			// No page without a configured type; the graph itself was
			// still compiled and is present in document graphs.
			result.SkippedPages = append(result.SkippedPages, er.Record.Name)
			continue
		}
		if err := h.writeEntity(outDir, info.Collection, er); err != nil {
			return nil, err
		}
	}
	sort.Strings(result.SkippedPages)
	return result, nil
}

// loadDocuments parses every HTML file in the documents directory, sorted by
// file name so chapter order follows naming.
func (h *BuildHandler) loadDocuments(bc *services.BuildContext, dir string) ([]*entities.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading documents directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	docs := make([]*entities.Document, 0, len(names))
	for _, name := range names {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("opening document: %w", err)
		}
		doc, err := parsers.ParseDocument(f, strings.TrimSuffix(name, ".html"))
		f.Close()
		if err != nil {
			return nil, err
		}
		doc.URL = bc.DocumentURL(doc.Slug)
		docs = append(docs, doc)
	}
	return docs, nil
}

func (h *BuildHandler) writeDocument(outDir string, dr *services.DocumentResult) error {
	dir := filepath.Join(outDir, dr.Document.Slug)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	page, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return fmt.Errorf("creating page file: %w", err)
	}
	defer page.Close()
	if err := parsers.RenderDocument(page, dr.Document); err != nil {
		return err
	}

	return h.writeGraph(dir, dr.Graph)
}

func (h *BuildHandler) writeEntity(outDir, collection string, er *services.EntityResult) error {
	dir := filepath.Join(outDir, collection, entities.Slugify(er.Record.Name))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if len(er.Node.Contexts) > 0 {
		data, err := json.MarshalIndent(er.Node.Contexts, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling contexts for %q: %w", er.Record.Name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, "contexts.json"), data, 0644); err != nil {
			return fmt.Errorf("writing contexts: %w", err)
		}
	}
	return h.writeGraph(dir, er.Node.Object())
}

// writeGraph writes the compacted JSON-LD form and the N-Quads form of one
// graph object.
func (h *BuildHandler) writeGraph(dir string, obj map[string]any) error {
	compacted, err := h.codec.Compact(obj)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(compacted, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling graph: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "graph.jsonld"), data, 0644); err != nil {
		return fmt.Errorf("writing graph: %w", err)
	}

	quads, err := h.codec.NQuads(obj)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "graph.nq"), []byte(quads), 0644); err != nil {
		return fmt.Errorf("writing rdf: %w", err)
	}
	return nil
}
