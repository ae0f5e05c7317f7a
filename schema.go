package detab

import (
	"maps"
	"slices"
)

// Schema accumulates every column name seen across a run and fixes a
// deterministic output order for the header. The zero value is ready to
// use.
type Schema struct {
	seen map[string]struct{}
}

// Add records every column name of rec.
func (s *Schema) Add(rec Record) {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	for name := range rec {
		s.seen[name] = struct{}{}
	}
}

// Len reports how many distinct column names have been seen.
func (s *Schema) Len() int { return len(s.seen) }

// Columns returns the deduplicated column names in lexicographic order.
// The order is a function of the name set alone, so permuted input
// produces an identical header.
func (s *Schema) Columns() []string {
	return slices.Sorted(maps.Keys(s.seen))
}
