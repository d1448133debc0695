// Package services contains the cross-linking and graph compilation logic.
package services

import (
	"path"
	"sort"
	"strings"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/ports"
)

// BuildContext carries the shared read-only collaborators and the site
// identity for one build. Every core service receives it explicitly; there
// is no ambient state.
type BuildContext struct {
	Store    ports.RecordStore
	Registry ports.TypeRegistry
	Reporter ports.Reporter

	// SiteURL is the absolute site origin, e.g. "https://example.org".
	SiteURL string
	// BaseURL is the path prefix pages are served under, "/" by default.
	BaseURL string
}

// PageURL returns the canonical URL of an entity page: site origin, base
// path, collection, slugified name, trailing slash. The derivation is
// deterministic, so repeated calls for the same record agree within a build.
func (bc *BuildContext) PageURL(collection, name string) string {
	p := path.Join("/", bc.BaseURL, collection, entities.Slugify(name))
	return strings.TrimRight(bc.SiteURL, "/") + p + "/"
}

// DocumentURL returns the canonical URL of a narrative document page.
func (bc *BuildContext) DocumentURL(slug string) string {
	p := path.Join("/", bc.BaseURL, slug)
	return strings.TrimRight(bc.SiteURL, "/") + p + "/"
}

func (bc *BuildContext) report(kind entities.AdvisoryKind, subject, detail string) {
	if bc.Reporter == nil {
		return
	}
	bc.Reporter.Report(entities.Advisory{Kind: kind, Subject: subject, Detail: detail})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
