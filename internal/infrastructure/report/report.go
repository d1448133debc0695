// Package report provides Reporter implementations for build advisories.
package report

import (
	"sync"

	"github.com/weft-dev/weft/internal/domain/entities"
)

// Collector accumulates advisories in memory. Safe for concurrent use.
type Collector struct {
	mu         sync.Mutex
	advisories []entities.Advisory
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Report appends the advisory.
func (c *Collector) Report(adv entities.Advisory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advisories = append(c.advisories, adv)
}

// Advisories returns a copy of everything reported so far.
func (c *Collector) Advisories() []entities.Advisory {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entities.Advisory, len(c.advisories))
	copy(out, c.advisories)
	return out
}

// Count returns the number of advisories reported so far.
func (c *Collector) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.advisories)
}
