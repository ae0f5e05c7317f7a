package detab

import "strings"

// Fields extracts one trimmed field per span from line. Span offsets are
// clipped to the line's length, so a line shorter than a span yields an
// empty field, never an error. Offsets are character positions, not
// bytes.
func Fields(line string, spans []Span) []string {
	runes := []rune(line)
	out := make([]string, len(spans))
	for i, sp := range spans {
		start := min(sp.Start, len(runes))
		end := min(sp.End, len(runes))
		out[i] = strings.TrimSpace(string(runes[start:end]))
	}
	return out
}
