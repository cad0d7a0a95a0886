package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridquest/internal/gamedata"
)

// Renderer draws the map and status panel onto a Screen.
type Renderer struct {
	screen    *Screen
	palette   map[rune]tcell.Color
	itemColor tcell.Color
}

// NewRenderer creates a renderer. Glyph colors come from the role registry;
// glyphs it does not know are drawn in the item color.
func NewRenderer(screen *Screen, roles *gamedata.RoleRegistry, deadGlyph rune) *Renderer {
	r := &Renderer{
		screen:    screen,
		palette:   map[rune]tcell.Color{},
		itemColor: tcell.ColorAqua,
	}
	if roles != nil {
		r.palette = roles.Palette(deadGlyph)
		r.itemColor = roles.ItemColor()
	}
	return r
}

// Render draws the map, the status panel below it and a footer line.
func (r *Renderer) Render(src MapSource, bar *StatusBar, footer string) {
	r.screen.Frame(func() {
		h := r.drawMap(src)

		line := h + 2
		if bar != nil {
			for _, s := range bar.Lines() {
				r.RenderMessage(s, line)
				line++
			}
		}
		if footer != "" {
			r.RenderMessage(footer, line)
		}
	})
}

// drawMap draws the bordered map and returns its height in cells.
func (r *Renderer) drawMap(src MapSource) int {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	w, h := src.Width(), src.Height()
	for x := 0; x < w+2; x++ {
		r.screen.SetContent(x, 0, '+', borderStyle)
		r.screen.SetContent(x, h+1, '+', borderStyle)
	}
	for row := 1; row <= h; row++ {
		r.screen.SetContent(0, row, '+', borderStyle)
		r.screen.SetContent(w+1, row, '+', borderStyle)

		// Up is +y: screen row 1 shows y = h-1.
		y := h - row
		for x := 0; x < w; x++ {
			if glyph, ok := src.GlyphAt(x, y); ok {
				r.screen.SetContent(x+1, row, glyph, r.glyphStyle(glyph))
			}
		}
	}
	return h
}

// glyphStyle returns the style for a character or item glyph.
func (r *Renderer) glyphStyle(glyph rune) tcell.Style {
	color, ok := r.palette[glyph]
	if !ok {
		color = r.itemColor
	}
	return tcell.StyleDefault.Foreground(color).Bold(true)
}

// RenderMessage writes msg starting at column 0 of row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.PutString(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}
