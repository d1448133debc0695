// Package parsers provides parsers for entity records and narrative documents.
package parsers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/weft-dev/weft/internal/domain/entities"
)

// Parser defines the interface for parsing records from an input format.
type Parser interface {
	Parse(r io.Reader) ([]*entities.Record, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "yaml", "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return &YAMLParser{}
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml":
		return &YAMLParser{}
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// RecordFromRaw builds a record from a decoded property mapping. The mapping
// must carry a non-empty "name"; "type" and "id" are lifted out and every
// remaining key becomes a classified property value.
func RecordFromRaw(m map[string]any) (*entities.Record, error) {
	name, _ := m["name"].(string)
	if name == "" {
		return nil, fmt.Errorf("record has no name")
	}
	rec := &entities.Record{Name: name}
	if t, ok := m["type"].(string); ok {
		rec.Type = t
	}
	if id, ok := m["id"].(string); ok {
		rec.ID = id
	}
	props := make(map[string]entities.PropertyValue)
	for k, v := range m {
		switch k {
		case "name", "type", "id":
			continue
		}
		props[k] = entities.FromRaw(v)
	}
	if len(props) > 0 {
		rec.Properties = props
	}
	return rec, nil
}

// recordsFromRaw decodes either a single record mapping or a list of them.
func recordsFromRaw(v any) ([]*entities.Record, error) {
	switch t := v.(type) {
	case map[string]any:
		rec, err := RecordFromRaw(t)
		if err != nil {
			return nil, err
		}
		return []*entities.Record{rec}, nil
	case []any:
		records := make([]*entities.Record, 0, len(t))
		for i, raw := range t {
			m, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("record %d: expected a mapping, got %T", i+1, raw)
			}
			rec, err := RecordFromRaw(m)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i+1, err)
			}
			records = append(records, rec)
		}
		return records, nil
	default:
		return nil, fmt.Errorf("expected a record mapping or list, got %T", v)
	}
}
