// Package config provides configuration loading and management for a site.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the site configuration file name.
const DefaultConfigFile = "weft.yaml"

// Config holds the static site configuration (read-only after load).
type Config struct {
	Site    SiteConfig            `yaml:"site"`
	Paths   PathsConfig           `yaml:"paths,omitempty"`
	Types   map[string]TypeConfig `yaml:"types,omitempty"`
	Storage StorageConfig         `yaml:"storage,omitempty"`
	Build   BuildConfig           `yaml:"build,omitempty"`

	// Context is the JSON-LD context handed to the codec, either a context
	// URL or an inline context mapping.
	Context any `yaml:"context,omitempty"`
}

// SiteConfig identifies the site the graphs belong to.
type SiteConfig struct {
	URL     string `yaml:"url"`
	BaseURL string `yaml:"base_url,omitempty"`
}

// PathsConfig locates the build inputs and output, relative to the site root.
type PathsConfig struct {
	Records   string `yaml:"records,omitempty"`
	Documents string `yaml:"documents,omitempty"`
	Output    string `yaml:"output,omitempty"`
}

// TypeConfig maps one record type tag into the graph.
type TypeConfig struct {
	GraphType  string `yaml:"graph_type"`
	Collection string `yaml:"collection"`
	Template   string `yaml:"template,omitempty"`
}

// StorageConfig selects where records are read from.
type StorageConfig struct {
	// Driver is "yaml" (directory of record files, the default) or
	// "sqlite" (a record database).
	Driver string `yaml:"driver,omitempty"`
	// Path is the SQLite database file, used by the sqlite driver.
	Path string `yaml:"path,omitempty"`
}

// BuildConfig tunes the build pipeline.
type BuildConfig struct {
	Concurrency int `yaml:"concurrency,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			BaseURL: "/",
		},
		Paths: PathsConfig{
			Records:   "records",
			Documents: "documents",
			Output:    "public",
		},
		Storage: StorageConfig{
			Driver: "yaml",
		},
		Context: map[string]any{"@vocab": "https://schema.org/"},
	}
}

// Load loads the configuration from weft.yaml in the given site directory.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'weft init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if cfg.Site.URL == "" {
		return nil, fmt.Errorf("site.url is required in %s", configFile)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("WEFT_SITE_URL"); url != "" {
		c.Site.URL = url
	}
	if base := os.Getenv("WEFT_BASE_URL"); base != "" {
		c.Site.BaseURL = base
	}
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigFile)
}

// Exists checks if a weft config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}

// RecordsDir returns the absolute records directory for the site.
func (c *Config) RecordsDir(basePath string) string {
	return filepath.Join(basePath, c.Paths.Records)
}

// DocumentsDir returns the absolute documents directory for the site.
func (c *Config) DocumentsDir(basePath string) string {
	return filepath.Join(basePath, c.Paths.Documents)
}

// OutputDir returns the absolute output directory for the site.
func (c *Config) OutputDir(basePath string) string {
	return filepath.Join(basePath, c.Paths.Output)
}

// SQLitePath returns the record database path for the sqlite driver.
func (c *Config) SQLitePath(basePath string) string {
	if c.Storage.Path != "" {
		return filepath.Join(basePath, c.Storage.Path)
	}
	return filepath.Join(basePath, "records.db")
}
