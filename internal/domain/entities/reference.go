package entities

import "sort"

// Reference is one resolved explicit marker: the visible label text mapped
// to the entity it points at.
type Reference struct {
	Label      string
	Name       string
	Collection string
	URL        string
}

// ReferenceIndex maps visible label text to its resolved reference for one
// document. It is built once during the document's markup pass and is
// read-only afterwards. When the same label appears via multiple markers,
// the last one wins.
type ReferenceIndex map[string]Reference

// Labels returns the index's labels sorted longest first, ties broken
// lexicographically. Longest-first order guarantees that a label which
// contains another label as a substring is linked as a whole before the
// shorter one is considered.
func (ix ReferenceIndex) Labels() []string {
	labels := make([]string, 0, len(ix))
	for label := range ix {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if len(labels[i]) != len(labels[j]) {
			return len(labels[i]) > len(labels[j])
		}
		return labels[i] < labels[j]
	})
	return labels
}
