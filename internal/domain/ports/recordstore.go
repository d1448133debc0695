// Package ports defines the collaborator interfaces the core build depends on.
package ports

import (
	"context"
	"errors"

	"github.com/weft-dev/weft/internal/domain/entities"
)

// ErrRecordNotFound is returned by record lookups when no record carries the
// requested name.
var ErrRecordNotFound = errors.New("record not found")

// RecordStore is read-only access to the entity records of one build.
// Implementations must be safe for concurrent readers; no write path is
// used once a build starts.
type RecordStore interface {
	// FindByName returns the record whose name equals the given name.
	// Matching is exact and case-sensitive. Returns ErrRecordNotFound when
	// no record matches.
	FindByName(ctx context.Context, name string) (*entities.Record, error)

	// List returns every record in the store, sorted by name.
	List(ctx context.Context) ([]*entities.Record, error)
}
