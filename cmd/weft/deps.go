package main

import (
	"context"
	"fmt"

	"github.com/weft-dev/weft/internal/application/handlers"
	"github.com/weft-dev/weft/internal/domain/ports"
	"github.com/weft-dev/weft/internal/infrastructure/codec/jsonld"
	"github.com/weft-dev/weft/internal/infrastructure/config"
	"github.com/weft-dev/weft/internal/infrastructure/recordstore/sqlite"
	"github.com/weft-dev/weft/internal/infrastructure/recordstore/yamldir"
	"github.com/weft-dev/weft/internal/infrastructure/report"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config         *config.Config
	Store          ports.RecordStore
	Registry       *config.Registry
	Collector      *report.Collector
	BuildHandler   *handlers.BuildHandler
	RecordsHandler *handlers.RecordsHandler
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	sqliteRepo *sqlite.Repository
}

// withDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including low-level
// components.
func withInternalDeps(ctx context.Context, fn func(*internalDeps) error) error {
	cfg, err := config.Load(globalSite)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	registry := config.NewRegistry(cfg)
	collector := report.NewCollector()
	reporter := report.NewConsoleReporter(report.ConsoleReporterParams{
		Debug: globalVerbose,
		Next:  collector,
	})

	deps := &internalDeps{}

	var store ports.RecordStore
	switch cfg.Storage.Driver {
	case "", "yaml":
		yamlStore, err := yamldir.NewStore(cfg.RecordsDir(globalSite), reporter)
		if err != nil {
			return fmt.Errorf("loading records: %w", err)
		}
		store = yamlStore
	case "sqlite":
		repo, err := sqlite.NewRepository(cfg.SQLitePath(globalSite))
		if err != nil {
			return fmt.Errorf("opening record database: %w", err)
		}
		defer repo.Close()
		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("ensuring record schema: %w", err)
		}
		deps.sqliteRepo = repo
		store = repo
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	codec := jsonld.New(cfg.Context)

	deps.Deps = Deps{
		Config:         cfg,
		Store:          store,
		Registry:       registry,
		Collector:      collector,
		BuildHandler:   handlers.NewBuildHandler(cfg, store, registry, reporter, codec),
		RecordsHandler: handlers.NewRecordsHandler(store, registry, cfg.Site.URL, cfg.Site.BaseURL),
	}

	return fn(deps)
}

// withImportHandler provides the import handler for commands that write
// records. Only the sqlite driver has a write path.
func withImportHandler(ctx context.Context, fn func(*handlers.ImportHandler) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		if d.sqliteRepo == nil {
			return fmt.Errorf("record import needs the sqlite storage driver (set storage.driver in %s)", config.DefaultConfigFile)
		}
		return fn(handlers.NewImportHandler(d.sqliteRepo))
	})
}
