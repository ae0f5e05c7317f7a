package detab

// borderGlyphs covers the rounded, ASCII, heavy, and double box-drawing
// sets plus the light square corners, so tables drawn by the common
// renderers all tokenize the same way.
const borderGlyphs = "+-|=" +
	"╭╮╰╯─│┬┴├┤┼" +
	"┌┐└┘" +
	"┏┓┗┛━┃┳┻┣┫╋" +
	"╔╗╚╝═║╦╩╠╣╬"

// borderRunes reports which runes count as table borders when
// [Policy.Borders] is set.
var borderRunes = func() map[rune]bool {
	m := make(map[rune]bool, len(borderGlyphs))
	for _, r := range borderGlyphs {
		m[r] = true
	}
	return m
}()
