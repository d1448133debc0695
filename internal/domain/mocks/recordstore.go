// Package mocks provides mock implementations of the domain ports for testing.
package mocks

import (
	"context"
	"sort"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/ports"
)

// RecordStore is a mock implementation of ports.RecordStore backed by a map.
type RecordStore struct {
	Records map[string]*entities.Record
	Err     error
}

// FindByName returns the record stored under the exact name.
func (m *RecordStore) FindByName(ctx context.Context, name string) (*entities.Record, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	rec, ok := m.Records[name]
	if !ok {
		return nil, ports.ErrRecordNotFound
	}
	return rec, nil
}

// List returns all stored records sorted by name.
func (m *RecordStore) List(ctx context.Context) ([]*entities.Record, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	names := make([]string, 0, len(m.Records))
	for name := range m.Records {
		names = append(names, name)
	}
	sort.Strings(names)
	records := make([]*entities.Record, len(names))
	for i, name := range names {
		records[i] = m.Records[name]
	}
	return records, nil
}
