package config

import "github.com/weft-dev/weft/internal/domain/ports"

// Registry implements ports.TypeRegistry from the configured type table.
// It is read-only for the whole build.
type Registry struct {
	types map[string]ports.TypeInfo
}

// NewRegistry builds a registry from the loaded configuration.
func NewRegistry(cfg *Config) *Registry {
	types := make(map[string]ports.TypeInfo, len(cfg.Types))
	for tag, tc := range cfg.Types {
		types[tag] = ports.TypeInfo{
			GraphType:  tc.GraphType,
			Collection: tc.Collection,
			Template:   tc.Template,
		}
	}
	return &Registry{types: types}
}

// Resolve returns the graph configuration for a type tag.
func (r *Registry) Resolve(typeTag string) (ports.TypeInfo, bool) {
	info, ok := r.types[typeTag]
	return info, ok
}
