package detab

import (
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrMalformedTree = errors.New("malformed tree")
)

// TableOptions configures one Unjustify run.
type TableOptions struct {
	Policy Policy

	// Columns restricts and orders the output columns. Empty means all
	// columns in their inferred left-to-right order. Without Header the
	// names are zero-based indices ("0", "1", ...).
	Columns []string

	// IgnoreCase matches requested column names case-insensitively.
	// When two columns fold to the same name, the leftmost wins.
	IgnoreCase bool

	// Header treats the first row as column names. It is re-emitted as
	// the header of the output, not as a data row.
	Header bool

	// HeaderOnly infers column spans from the first non-blank line
	// alone instead of the whole input. Implies Header.
	HeaderOnly bool
}

// NestOptions configures one Unnest run.
type NestOptions struct {
	Policy Policy

	// Sep joins nested object keys into column names. Default ".".
	Sep string
}

// Unjustify infers the column layout of the justified table in lines and
// writes one delimited output row per line to w. Inference uses every
// non-blank line, so the whole input must be in hand before any output
// is produced. Returns ErrUnknownColumn if a requested column name
// matches nothing; no output is written in that case.
func Unjustify(w io.Writer, lines []string, o TableOptions) error {
	p := o.Policy
	header := o.Header || o.HeaderOnly

	shape := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if p.Borders && isRule(line, p) {
			continue
		}
		shape = append(shape, line)
	}
	if o.HeaderOnly && len(shape) > 1 {
		shape = shape[:1]
	}

	spans := InferSpans(shape, p)
	if len(spans) == 0 {
		return nil
	}

	known := make([]string, len(spans))
	if header && len(shape) > 0 {
		copy(known, Fields(shape[0], spans))
	} else {
		for i := range known {
			known[i] = strconv.Itoa(i)
		}
	}

	sel, err := Select(known, o.Columns, o.IgnoreCase)
	if err != nil {
		return err
	}

	e := NewEmitter(w, p)
	if header {
		if err := e.WriteFields(sel.Names()...); err != nil {
			return err
		}
	}
	consumed := false
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			if p.Borders && isRule(line, p) {
				continue
			}
			if header && !consumed {
				consumed = true
				continue
			}
		}
		if err := e.WriteFields(sel.Apply(Fields(line, spans))...); err != nil {
			return err
		}
	}
	return nil
}

// Unnest flattens the decoded tree root and writes a header line followed
// by one delimited row per flattened record to w. The header is the
// sorted union of every column name across all records. An empty tree
// (top-level null or empty array) writes nothing.
func Unnest(w io.Writer, root any, o NestOptions) error {
	f := Flattener{Sep: o.Sep}
	recs, err := f.Records(root)
	if err != nil {
		return err
	}

	var schema Schema
	for _, rec := range recs {
		schema.Add(rec)
	}
	cols := schema.Columns()
	if len(cols) == 0 && len(recs) == 0 {
		return nil
	}

	e := NewEmitter(w, o.Policy)
	return e.WriteAll(cols, slices.Values(recs))
}
