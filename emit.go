package detab

import (
	"io"
	"iter"
	"strings"
)

// Emitter writes rows of named fields as delimited text lines using a
// [Policy]'s resolved separators. Values pass through unescaped; a
// value containing the field separator is the caller's concern.
type Emitter struct {
	w       io.Writer
	field   string
	line    string
	missing string
}

// NewEmitter returns an Emitter writing to w. Separator resolution
// happens here, once.
func NewEmitter(w io.Writer, p Policy) *Emitter {
	return &Emitter{
		w:       w,
		field:   p.FieldSeparator(),
		line:    p.LineSeparator(),
		missing: p.Missing,
	}
}

// WriteFields writes one row of already-ordered values.
func (e *Emitter) WriteFields(values ...string) error {
	if _, err := io.WriteString(e.w, strings.Join(values, e.field)); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, e.line)
	return err
}

// WriteRecord writes rec's values in cols order. Columns the record has
// no value for, and explicit nulls, render as the missing placeholder.
func (e *Emitter) WriteRecord(cols []string, rec Record) error {
	values := make([]string, len(cols))
	for i, col := range cols {
		if s, ok := rec[col]; ok && !s.Null {
			values[i] = s.Text
		} else {
			values[i] = e.missing
		}
	}
	return e.WriteFields(values...)
}

// WriteAll writes a header row of cols followed by one row per record
// in seq.
func (e *Emitter) WriteAll(cols []string, recs iter.Seq[Record]) error {
	if err := e.WriteFields(cols...); err != nil {
		return err
	}
	for rec := range recs {
		if err := e.WriteRecord(cols, rec); err != nil {
			return err
		}
	}
	return nil
}
