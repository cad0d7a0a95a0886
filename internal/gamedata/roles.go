package gamedata

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// RoleDef defines a character role loaded from JSON.
type RoleDef struct {
	ID     string `json:"id"`     // Unique identifier matching entity.Role (e.g., "wizard")
	Name   string `json:"name"`   // Display name (e.g., "Wizard")
	Glyph  string `json:"glyph"`  // Single character for rendering (e.g., "W")
	Color  string `json:"color"`  // Hex color code (e.g., "#A070FF")
	HP     int    `json:"hp"`     // Starting and maximum hit points
	Damage int    `json:"damage"` // Base damage rating
}

// GlyphRune returns the first character of the glyph, or '?' when the glyph
// is empty or not valid UTF-8.
func (r *RoleDef) GlyphRune() rune {
	g, _ := utf8.DecodeRuneInString(r.Glyph)
	if g == utf8.RuneError {
		return '?'
	}
	return g
}

// TCellColor returns the color as a tcell.Color.
func (r *RoleDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(r.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// RolesFile represents the structure of roles.json.
type RolesFile struct {
	Roles     []RoleDef `json:"roles"`
	DeadColor string    `json:"deadColor"`
	ItemColor string    `json:"itemColor"`
}

// LoadRoles loads role definitions from the embedded roles.json file.
func LoadRoles() (RolesFile, error) {
	return Load[RolesFile]("roles.json")
}
