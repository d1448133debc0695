package handlers

import (
	"context"
	"fmt"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/ports"
	"github.com/weft-dev/weft/internal/domain/services"
	"github.com/weft-dev/weft/internal/infrastructure/report"
)

// RecordsHandler serves record listing and validation.
type RecordsHandler struct {
	store    ports.RecordStore
	registry ports.TypeRegistry
	siteURL  string
	baseURL  string
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(store ports.RecordStore, registry ports.TypeRegistry, siteURL, baseURL string) *RecordsHandler {
	return &RecordsHandler{store: store, registry: registry, siteURL: siteURL, baseURL: baseURL}
}

// RecordSummary describes one record for listing.
type RecordSummary struct {
	Name       string
	Type       string
	Collection string
	Properties int
}

// List returns a summary of every record in the store.
func (h *RecordsHandler) List(ctx context.Context) ([]RecordSummary, error) {
	records, err := h.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	out := make([]RecordSummary, len(records))
	for i, rec := range records {
		info, _ := h.registry.Resolve(rec.Type)
		out[i] = RecordSummary{
			Name:       rec.Name,
			Type:       rec.Type,
			Collection: info.Collection,
			Properties: len(rec.Properties),
		}
	}
	return out, nil
}

// Validate hydrates every record with a collecting reporter and returns the
// advisories a real build would raise: unresolved references, unconfigured
// types, image problems.
func (h *RecordsHandler) Validate(ctx context.Context) ([]entities.Advisory, error) {
	collector := report.NewCollector()
	bc := &services.BuildContext{
		Store:    h.store,
		Registry: h.registry,
		Reporter: collector,
		SiteURL:  h.siteURL,
		BaseURL:  h.baseURL,
	}
	compiler := services.NewGraphCompiler(bc)

	records, err := h.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	for _, rec := range records {
		if _, err := compiler.Hydrate(ctx, rec); err != nil {
			return nil, fmt.Errorf("validating %q: %w", rec.Name, err)
		}
	}
	return collector.Advisories(), nil
}
