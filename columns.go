package detab

import (
	"fmt"
	"slices"
	"strings"
)

// Selection maps a requested subset and order of output columns onto the
// columns of a table. Build one with [Select] before tokenizing begins;
// name resolution happens exactly once per run.
type Selection struct {
	indices []int
	names   []string
}

// Select resolves each requested name against the known column names,
// by exact equality or, with foldCase, case-folded equality. When two
// known columns fold to the same requested name the leftmost wins. An
// empty request selects every known column in input order. A name that
// matches nothing returns ErrUnknownColumn.
func Select(known, requested []string, foldCase bool) (Selection, error) {
	if len(requested) == 0 {
		sel := Selection{
			indices: make([]int, len(known)),
			names:   slices.Clone(known),
		}
		for i := range known {
			sel.indices[i] = i
		}
		return sel, nil
	}
	sel := Selection{
		indices: make([]int, 0, len(requested)),
		names:   make([]string, 0, len(requested)),
	}
	for _, want := range requested {
		i := slices.IndexFunc(known, func(have string) bool {
			return have == want || (foldCase && strings.EqualFold(have, want))
		})
		if i < 0 {
			return Selection{}, fmt.Errorf("%w: %q", ErrUnknownColumn, want)
		}
		sel.indices = append(sel.indices, i)
		sel.names = append(sel.names, known[i])
	}
	return sel, nil
}

// Names returns the resolved output column names, in output order. A
// case-folded match reports the known column's original spelling.
func (s Selection) Names() []string { return slices.Clone(s.names) }

// Indices returns the source column index for each output column.
func (s Selection) Indices() []int { return slices.Clone(s.indices) }

// Apply projects one tokenized row onto the selection. A selected index
// beyond the row's length yields an empty field.
func (s Selection) Apply(fields []string) []string {
	out := make([]string, len(s.indices))
	for i, idx := range s.indices {
		if idx < len(fields) {
			out[i] = fields[idx]
		}
	}
	return out
}
