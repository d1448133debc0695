package parsers

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/weft-dev/weft/internal/domain/entities"
)

// CSVParser parses flat records from CSV format. Nested properties cannot be
// expressed; every non-reserved column becomes a scalar property.
type CSVParser struct{}

// Parse reads CSV from the reader and returns the parsed records.
// Expected columns: name, type, and optionally id; any further column is
// kept as a property. Empty cells are skipped.
func (p *CSVParser) Parse(r io.Reader) ([]*entities.Record, error) {
	reader := csv.NewReader(r)

	header, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	var records []*entities.Record
	lineNum := 1 // header is line 1
	for {
		lineNum++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		raw := make(map[string]any, len(header))
		for i, col := range header {
			if i < len(row) && row[i] != "" {
				raw[col] = row[i]
			}
		}
		rec, err := RecordFromRaw(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) ([]string, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	seen := make(map[string]bool, len(header))
	for _, col := range header {
		seen[col] = true
	}
	for _, col := range []string{"name", "type"} {
		if !seen[col] {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return header, nil
}
