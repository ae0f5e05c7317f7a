package detab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldLineFirstLine(t *testing.T) {
	t.Parallel()
	gaps := foldLine(nil, "  a bb  ccc ", Policy{})
	assert.Equal(t, []bool{true, true, false, true, false, false, true, true, false, false, false, true}, gaps)
}

func TestFoldLineTwoLines(t *testing.T) {
	t.Parallel()
	gaps := foldLine(nil, "  a bb  ccc ", Policy{})
	gaps = foldLine(gaps, " aa  b ccc  ", Policy{})
	assert.Equal(t, []bool{true, false, false, true, false, false, true, false, false, false, false, true}, gaps)
}

func TestFoldLineCommaDelimiter(t *testing.T) {
	t.Parallel()
	p := Policy{Delimiters: ","}
	gaps := foldLine(nil, ",,a,bb,,ccc,", p)
	assert.Equal(t, []bool{true, true, false, true, false, false, true, true, false, false, false, true}, gaps)
}

func TestFoldLineMixedDelimiters(t *testing.T) {
	t.Parallel()
	p := Policy{Delimiters: ","}
	gaps := foldLine(nil, ", a,bb, ccc,", p)
	assert.Equal(t, []bool{true, true, false, true, false, false, true, true, false, false, false, true}, gaps)
}

func TestFoldLineShortLineKeepsTail(t *testing.T) {
	t.Parallel()
	gaps := foldLine(nil, "aa  bb", Policy{})
	gaps = foldLine(gaps, "cc", Policy{})
	// Positions past the short line's end keep the first line's verdict.
	assert.Equal(t, []bool{false, false, true, true, false, false}, gaps)
}

func TestSeparableDoubleMode(t *testing.T) {
	t.Parallel()
	p := Policy{Whitespace: WhitespaceDouble}
	// The lone space inside "a b" is content; the double run separates.
	assert.Equal(t, []bool{false, false, false, true, true, false}, separable("a b  c", p))
}

func TestSeparableIgnoreMode(t *testing.T) {
	t.Parallel()
	p := Policy{Whitespace: WhitespaceIgnore, Delimiters: "|"}
	assert.Equal(t, []bool{false, false, true, false, false}, separable("a |b ", p))
}

func TestSeparableBorderRunes(t *testing.T) {
	t.Parallel()
	p := Policy{Whitespace: WhitespaceIgnore, Borders: true}
	assert.Equal(t, []bool{true, false, true, false, true}, separable("│a│b│", p))
}

func TestContentRunsInterior(t *testing.T) {
	t.Parallel()
	runs := contentRuns([]bool{true, true, false, true, false, false, true, true, false, false, false, true})
	assert.Equal(t, []Span{{2, 3}, {4, 6}, {8, 11}}, runs)
}

func TestContentRunsTwoLines(t *testing.T) {
	t.Parallel()
	runs := contentRuns([]bool{true, false, false, true, false, false, true, false, false, false, false, true})
	assert.Equal(t, []Span{{1, 3}, {4, 6}, {7, 11}}, runs)
}

func TestContentRunsTrailingRunCloses(t *testing.T) {
	t.Parallel()
	runs := contentRuns([]bool{true, false, false})
	assert.Equal(t, []Span{{1, 3}}, runs)
}

func TestContentRunsEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, contentRuns(nil))
	assert.Empty(t, contentRuns([]bool{true, true}))
}

func TestIsRule(t *testing.T) {
	t.Parallel()
	p := Policy{Borders: true}
	assert.True(t, isRule("+------+-----+", p))
	assert.True(t, isRule("├──────┼─────┤", p))
	assert.False(t, isRule("| name | age |", p))
	assert.False(t, isRule("   ", p), "blank line is not a rule")
}
