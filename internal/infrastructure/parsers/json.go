package parsers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/weft-dev/weft/internal/domain/entities"
)

// JSONParser parses records from JSON format. A file may hold a single
// record object or an array of them.
type JSONParser struct{}

// Parse reads JSON from the reader and returns the parsed records.
func (p *JSONParser) Parse(r io.Reader) ([]*entities.Record, error) {
	var raw any
	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return recordsFromRaw(normalizeJSON(raw))
}

// normalizeJSON rewrites json.Number values into plain Go numbers so records
// decode the same way regardless of source format.
func normalizeJSON(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeJSON(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeJSON(val)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i)
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
