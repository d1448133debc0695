package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/infrastructure/parsers"
)

// RecordWriter is the write side of a record store, used by import.
type RecordWriter interface {
	Save(ctx context.Context, rec *entities.Record) error
}

// ImportHandler imports record files into a writable record store.
type ImportHandler struct {
	writer RecordWriter
}

// NewImportHandler creates a new import handler.
func NewImportHandler(writer RecordWriter) *ImportHandler {
	return &ImportHandler{writer: writer}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Format string // "yaml", "json", "csv", or "auto"
}

// ImportResult contains the result of an import.
type ImportResult struct {
	FilePath    string
	RecordCount int
	Names       []string
}

// Handle parses the file and saves every record it holds.
func (h *ImportHandler) Handle(ctx context.Context, filePath string, opts ImportOptions) (*ImportResult, error) {
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	records, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	result := &ImportResult{FilePath: filePath}
	for _, rec := range records {
		if err := h.writer.Save(ctx, rec); err != nil {
			return nil, err
		}
		result.RecordCount++
		result.Names = append(result.Names, rec.Name)
	}
	return result, nil
}
