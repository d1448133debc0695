// Package jsonld adapts the json-gold processor to the GraphCodec port.
package jsonld

import (
	"fmt"

	"github.com/piprate/json-gold/ld"
)

// Codec serializes pre-compaction graph objects through json-gold. Errors
// are structural and propagate to the caller; the codec never degrades them
// to advisories.
type Codec struct {
	proc    *ld.JsonLdProcessor
	context any
}

// New creates a codec bound to one JSON-LD context, either a context URL or
// an inline context mapping.
func New(context any) *Codec {
	return &Codec{proc: ld.NewJsonLdProcessor(), context: context}
}

// Compact applies the configured context to the graph object.
func (c *Codec) Compact(obj map[string]any) (map[string]any, error) {
	opts := ld.NewJsonLdOptions("")
	opts.ProcessingMode = ld.JsonLd_1_1
	compacted, err := c.proc.Compact(obj, c.context, opts)
	if err != nil {
		return nil, fmt.Errorf("compacting graph: %w", err)
	}
	return compacted, nil
}

// NQuads serializes the graph object as RDF N-Quads.
func (c *Codec) NQuads(obj map[string]any) (string, error) {
	opts := ld.NewJsonLdOptions("")
	opts.ProcessingMode = ld.JsonLd_1_1
	opts.Format = "application/n-quads"
	expanded := map[string]any{"@context": c.context}
	for k, v := range obj {
		expanded[k] = v
	}
	rdf, err := c.proc.ToRDF(expanded, opts)
	if err != nil {
		return "", fmt.Errorf("serializing rdf: %w", err)
	}
	quads, ok := rdf.(string)
	if !ok {
		return "", fmt.Errorf("unexpected rdf serialization type %T", rdf)
	}
	return quads, nil
}
