// Package sqlite provides a SQLite-backed implementation of ports.RecordStore.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/ports"
)

// Repository implements ports.RecordStore using SQLite, and adds the write
// side used by record import. During a build it is only read.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository opens (or creates) the record database at path.
func NewRepository(path string) (*Repository, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{db: db, path: path}, nil
}

// EnsureSchema creates the records table if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS records (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		type TEXT NOT NULL,
		record_id TEXT,
		properties TEXT NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_records_type ON records(type);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts or replaces a record by name.
func (r *Repository) Save(ctx context.Context, rec *entities.Record) error {
	props := make(map[string]any, len(rec.Properties))
	for k, v := range rec.Properties {
		props[k] = v.Raw()
	}
	data, err := json.Marshal(props)
	if err != nil {
		return fmt.Errorf("marshaling properties for %q: %w", rec.Name, err)
	}

	const query = `
	INSERT INTO records (id, name, type, record_id, properties)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET
		type = excluded.type,
		record_id = excluded.record_id,
		properties = excluded.properties
	`
	_, err = r.db.ExecContext(ctx, query, uuid.New().String(), rec.Name, rec.Type, rec.ID, string(data))
	if err != nil {
		return fmt.Errorf("saving record %q: %w", rec.Name, err)
	}
	return nil
}

// FindByName returns the record with exactly the given name.
func (r *Repository) FindByName(ctx context.Context, name string) (*entities.Record, error) {
	const query = `SELECT name, type, record_id, properties FROM records WHERE name = ?`
	row := r.db.QueryRowContext(ctx, query, name)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding record %q: %w", name, err)
	}
	return rec, nil
}

// List returns every record sorted by name.
func (r *Repository) List(ctx context.Context) ([]*entities.Record, error) {
	const query = `SELECT name, type, record_id, properties FROM records ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var records []*entities.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*entities.Record, error) {
	var name, typeTag, propsJSON string
	var recordID sql.NullString
	if err := s.Scan(&name, &typeTag, &recordID, &propsJSON); err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(propsJSON), &raw); err != nil {
		return nil, fmt.Errorf("unmarshaling properties for %q: %w", name, err)
	}

	rec := &entities.Record{Name: name, Type: typeTag, ID: recordID.String}
	if len(raw) > 0 {
		rec.Properties = make(map[string]entities.PropertyValue, len(raw))
		for k, v := range raw {
			rec.Properties[k] = entities.FromRaw(v)
		}
	}
	return rec, nil
}
