package detab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/detab"
)

func TestFieldsTrims(t *testing.T) {
	t.Parallel()
	spans := []detab.Span{{Start: 0, End: 5}, {Start: 5, End: 10}}
	assert.Equal(t, []string{"ab", "cd"}, detab.Fields("  ab   cd ", spans))
}

func TestFieldsShortLine(t *testing.T) {
	t.Parallel()
	spans := []detab.Span{{Start: 0, End: 3}, {Start: 5, End: 9}}
	// Spans past the line's end clip to empty fields, never an error.
	assert.Equal(t, []string{"ab", ""}, detab.Fields("ab", spans))
	assert.Equal(t, []string{"", ""}, detab.Fields("", spans))
}

func TestFieldsPartialOverlap(t *testing.T) {
	t.Parallel()
	spans := []detab.Span{{Start: 0, End: 3}, {Start: 5, End: 9}}
	assert.Equal(t, []string{"abc", "x"}, detab.Fields("abc  x", spans))
}

func TestFieldsCharacterOffsets(t *testing.T) {
	t.Parallel()
	// Offsets count characters, not bytes.
	spans := []detab.Span{{Start: 0, End: 3}, {Start: 4, End: 6}}
	assert.Equal(t, []string{"å∫ç", "xy"}, detab.Fields("å∫ç xy", spans))
}
