package parsers

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/weft-dev/weft/internal/domain/entities"
)

// YAMLParser parses records from YAML format. A file may hold a single
// record mapping or a list of them.
type YAMLParser struct{}

// Parse reads YAML from the reader and returns the parsed records.
func (p *YAMLParser) Parse(r io.Reader) ([]*entities.Record, error) {
	var raw any
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return recordsFromRaw(normalizeYAML(raw))
}

// normalizeYAML rewrites yaml.v3's decoded values so nested mappings are
// always map[string]any regardless of nesting depth.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprintf("%v", k)] = normalizeYAML(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeYAML(val)
		}
		return out
	default:
		return v
	}
}
