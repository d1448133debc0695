// Package yamldir provides a RecordStore reading a directory of record files.
package yamldir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/ports"
	"github.com/weft-dev/weft/internal/infrastructure/parsers"
)

// Store implements ports.RecordStore over a directory of YAML/JSON record
// files. All records are loaded up front; the store is read-only afterwards
// and safe for concurrent readers.
type Store struct {
	records map[string]*entities.Record
	names   []string
}

// NewStore loads every record file under dir. A record whose name was
// already loaded raises a DuplicateRecord advisory and is skipped; the first
// occurrence wins so lookups stay unambiguous.
func NewStore(dir string, reporter ports.Reporter) (*Store, error) {
	s := &Store{records: make(map[string]*entities.Record)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading records directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if parsers.ForFile(entry.Name()) == nil {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	for _, name := range files {
		path := filepath.Join(dir, name)
		if err := s.loadFile(path, reporter); err != nil {
			return nil, err
		}
	}

	sort.Strings(s.names)
	return s, nil
}

func (s *Store) loadFile(path string, reporter ports.Reporter) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening record file: %w", err)
	}
	defer f.Close()

	records, err := parsers.ForFile(path).Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, rec := range records {
		if _, exists := s.records[rec.Name]; exists {
			if reporter != nil {
				reporter.Report(entities.Advisory{
					Kind:    entities.AdvisoryDuplicateRecord,
					Subject: rec.Name,
					Detail:  fmt.Sprintf("duplicate record in %s", filepath.Base(path)),
				})
			}
			continue
		}
		s.records[rec.Name] = rec
		s.names = append(s.names, rec.Name)
	}
	return nil
}

// FindByName returns the record with exactly the given name.
func (s *Store) FindByName(ctx context.Context, name string) (*entities.Record, error) {
	rec, ok := s.records[name]
	if !ok {
		return nil, ports.ErrRecordNotFound
	}
	return rec, nil
}

// List returns every record sorted by name.
func (s *Store) List(ctx context.Context) ([]*entities.Record, error) {
	out := make([]*entities.Record, len(s.names))
	for i, name := range s.names {
		out[i] = s.records[name]
	}
	return out, nil
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	return len(s.records)
}
