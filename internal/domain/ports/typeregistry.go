package ports

// TypeInfo describes how one record type tag maps into the graph.
type TypeInfo struct {
	// GraphType is the canonical linked-data type, e.g. "Person".
	GraphType string
	// Collection is the output grouping the type belongs to, e.g. "people".
	Collection string
	// Template names the page template used by the generator.
	Template string
}

// TypeRegistry resolves record type tags to their graph configuration.
// Registries are read-only for the whole build.
type TypeRegistry interface {
	// Resolve returns the configuration for a type tag. The second return
	// is false when the tag is unconfigured; callers pass the raw tag
	// through unchanged in that case.
	Resolve(typeTag string) (TypeInfo, bool)
}
