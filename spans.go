package detab

import (
	"strings"
	"unicode"
)

// Span is a half-open character range [Start, End) identifying one
// column across every line of a justified table.
type Span struct {
	Start, End int
}

// InferSpans computes the column layout shared by lines. A character
// position becomes a column boundary only if every line is separable
// there; positions past a line's own end do not veto. Blank lines are
// skipped. The work is two passes: classify every character column
// across all lines, then merge the maximal content runs into spans.
// With no content columns the result is empty, never an error.
func InferSpans(lines []string, p Policy) []Span {
	var gaps []bool // true = every line so far separates here
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		gaps = foldLine(gaps, line, p)
	}
	return contentRuns(gaps)
}

// foldLine ANDs one line's separable positions into gaps, growing gaps
// to the line's length. Positions beyond the line keep their prior
// value: a short line cannot veto a boundary it never reaches.
func foldLine(gaps []bool, line string, p Policy) []bool {
	for i, s := range separable(line, p) {
		if i < len(gaps) {
			gaps[i] = gaps[i] && s
		} else {
			gaps = append(gaps, s)
		}
	}
	return gaps
}

// separable classifies each character position of one line. Configured
// delimiters and border glyphs always separate; whitespace separates
// per the active mode. In double mode a lone space between two
// non-space characters is field content, so multi-word values survive.
func separable(line string, p Policy) []bool {
	runes := []rune(line)
	sep := make([]bool, len(runes))
	for i, r := range runes {
		switch {
		case p.delimiter(r):
			sep[i] = true
		case !unicode.IsSpace(r):
			// content
		case p.Whitespace == WhitespaceAny:
			sep[i] = true
		case p.Whitespace == WhitespaceDouble:
			prev := i > 0 && unicode.IsSpace(runes[i-1])
			next := i+1 < len(runes) && unicode.IsSpace(runes[i+1])
			sep[i] = prev || next
		}
	}
	return sep
}

// contentRuns merges the maximal non-boundary runs into spans. A run
// still open at the rightmost observed column closes there.
func contentRuns(gaps []bool) []Span {
	var spans []Span
	start := -1
	for i, gap := range gaps {
		switch {
		case start < 0 && !gap:
			start = i
		case start >= 0 && gap:
			spans = append(spans, Span{Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, Span{Start: start, End: len(gaps)})
	}
	return spans
}
