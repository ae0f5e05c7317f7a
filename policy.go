package detab

import (
	"fmt"
	"strings"
	"unicode"
)

// WhitespaceMode controls how whitespace separates columns.
type WhitespaceMode int

const (
	WhitespaceAny    WhitespaceMode = iota // any whitespace run is a boundary
	WhitespaceDouble                       // only runs of two or more
	WhitespaceIgnore                       // whitespace never separates
)

// String returns the mode name.
func (m WhitespaceMode) String() string {
	switch m {
	case WhitespaceAny:
		return "any"
	case WhitespaceDouble:
		return "double"
	case WhitespaceIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("WhitespaceMode(%d)", int(m))
	}
}

// ParseWhitespaceMode parses a mode name as accepted on the command line.
func ParseWhitespaceMode(s string) (WhitespaceMode, error) {
	switch s {
	case "any", "":
		return WhitespaceAny, nil
	case "double":
		return WhitespaceDouble, nil
	case "ignore":
		return WhitespaceIgnore, nil
	default:
		return 0, fmt.Errorf("unsupported whitespace mode %q", s)
	}
}

// ASCII control characters selectable as output separators.
const (
	unitSeparator   = "\x1f"
	recordSeparator = "\x1e"
	nullSeparator   = "\x00"
)

// Policy describes how field boundaries are recognized on input and how
// fields are joined on output. The zero value splits on any whitespace
// run and emits comma-separated, newline-terminated rows.
type Policy struct {
	Whitespace WhitespaceMode

	// Delimiters are additional single-character column delimiters,
	// recognized regardless of whitespace mode.
	Delimiters string

	// Borders treats box-drawing and ASCII border glyphs as delimiters
	// and drops horizontal rule lines from the output.
	Borders bool

	// OutputSep joins fields on output. Empty means ",".
	OutputSep string

	// UnitSep joins fields with the ASCII unit separator (0x1F). Wins
	// over OutputSep when both are set.
	UnitSep bool

	// LineSep terminates each output row. Empty means "\n".
	LineSep string

	// RecordSep terminates rows with the ASCII record separator (0x1E).
	// Wins over LineSep.
	RecordSep bool

	// NullSep terminates rows with a NUL byte. Wins over both LineSep
	// and RecordSep.
	NullSep bool

	// Missing is emitted for fields a record has no value for.
	Missing string
}

// FieldSeparator resolves the effective separator between fields.
// Control-character overrides win over an explicit separator.
func (p Policy) FieldSeparator() string {
	if p.UnitSep {
		return unitSeparator
	}
	if p.OutputSep == "" {
		return ","
	}
	return p.OutputSep
}

// LineSeparator resolves the effective row terminator.
func (p Policy) LineSeparator() string {
	if p.NullSep {
		return nullSeparator
	}
	if p.RecordSep {
		return recordSeparator
	}
	if p.LineSep == "" {
		return "\n"
	}
	return p.LineSep
}

// delimiter reports whether r always separates columns, independent of
// whitespace mode.
func (p Policy) delimiter(r rune) bool {
	if strings.ContainsRune(p.Delimiters, r) {
		return true
	}
	return p.Borders && borderRunes[r]
}

// isRule reports whether line is a horizontal rule: nothing but border
// glyphs, configured delimiters, and whitespace. Meaningful only with
// Borders set; a blank line is not a rule.
func isRule(line string, p Policy) bool {
	seen := false
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		if !p.delimiter(r) {
			return false
		}
		seen = true
	}
	return seen
}
