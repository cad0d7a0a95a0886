package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor reads a six digit color such as "#A070FF". The leading '#'
// is optional.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("color %q: want 6 hex digits", hex)
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

// MustParseHexColor is ParseHexColor for colors known at compile time.
func MustParseHexColor(hex string) tcell.Color {
	c, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
