package ports

// GraphCodec serializes pre-compaction graph objects into their final
// linked-data forms. Codec errors are structural, not per-record: they
// propagate to the caller unchanged and are never downgraded to advisories.
type GraphCodec interface {
	// Compact applies the configured JSON-LD context to the graph object.
	Compact(obj map[string]any) (map[string]any, error)

	// NQuads serializes the graph object as RDF N-Quads.
	NQuads(obj map[string]any) (string, error)
}
