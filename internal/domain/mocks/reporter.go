package mocks

import (
	"sync"

	"github.com/weft-dev/weft/internal/domain/entities"
)

// Reporter is a mock implementation of ports.Reporter that records every
// advisory it receives. Safe for concurrent use.
type Reporter struct {
	mu         sync.Mutex
	advisories []entities.Advisory
}

// Report appends the advisory.
func (m *Reporter) Report(adv entities.Advisory) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advisories = append(m.advisories, adv)
}

// Advisories returns a copy of everything reported so far.
func (m *Reporter) Advisories() []entities.Advisory {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.Advisory, len(m.advisories))
	copy(out, m.advisories)
	return out
}

// ByKind returns the reported advisories of one kind.
func (m *Reporter) ByKind(kind entities.AdvisoryKind) []entities.Advisory {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entities.Advisory
	for _, adv := range m.advisories {
		if adv.Kind == kind {
			out = append(out, adv)
		}
	}
	return out
}
