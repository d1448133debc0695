package config

import (
	"fmt"
	"os"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# Weft site configuration

site:
  url: https://example.org
  base_url: /

paths:
  records: records
  documents: documents
  output: public

# JSON-LD context handed to the codec.
context:
  "@vocab": https://schema.org/

types:
  person:
    graph_type: Person
    collection: people
    template: entity.html
  place:
    graph_type: Place
    collection: places
    template: entity.html
  image:
    graph_type: ImageObject
    collection: images
    template: image.html
`

// WriteDefault writes a default weft.yaml into the site directory.
func WriteDefault(basePath string) error {
	configFile := ConfigFilePath(basePath)

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
