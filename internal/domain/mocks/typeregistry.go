package mocks

import "github.com/weft-dev/weft/internal/domain/ports"

// TypeRegistry is a mock implementation of ports.TypeRegistry.
type TypeRegistry struct {
	Types map[string]ports.TypeInfo
}

// Resolve looks the tag up in the Types map.
func (m *TypeRegistry) Resolve(typeTag string) (ports.TypeInfo, bool) {
	info, ok := m.Types[typeTag]
	return info, ok
}
