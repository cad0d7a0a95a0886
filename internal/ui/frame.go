package ui

import "strings"

// MapSource is a grid that can be drawn.
type MapSource interface {
	Width() int
	Height() int
	GlyphAt(x, y int) (rune, bool)
}

// MapLines draws src as a '+'-bordered ASCII rectangle. Up is +y, so the
// top row is y = Height-1 and the bottom row is y = 0.
func MapLines(src MapSource) []string {
	w, h := src.Width(), src.Height()
	border := strings.Repeat("+", w+2)

	lines := make([]string, 0, h+2)
	lines = append(lines, border)
	var b strings.Builder
	for y := h - 1; y >= 0; y-- {
		b.Reset()
		b.WriteByte('+')
		for x := 0; x < w; x++ {
			if glyph, ok := src.GlyphAt(x, y); ok {
				b.WriteRune(glyph)
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('+')
		lines = append(lines, b.String())
	}
	return append(lines, border)
}
