package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// RoleRegistry holds loaded role definitions and display colors.
type RoleRegistry struct {
	roles     map[string]*RoleDef
	all       []RoleDef
	deadColor tcell.Color
	itemColor tcell.Color
}

// NewRoleRegistry creates a registry from a loaded roles file.
func NewRoleRegistry(file RolesFile) *RoleRegistry {
	registry := &RoleRegistry{
		roles:     make(map[string]*RoleDef),
		all:       file.Roles,
		deadColor: tcell.ColorGray,
		itemColor: tcell.ColorAqua,
	}
	for i := range file.Roles {
		registry.roles[file.Roles[i].ID] = &file.Roles[i]
	}
	if c, err := ParseHexColor(file.DeadColor); err == nil {
		registry.deadColor = c
	}
	if c, err := ParseHexColor(file.ItemColor); err == nil {
		registry.itemColor = c
	}
	return registry
}

// LoadRoleRegistry loads and creates a registry from the embedded roles.json.
func LoadRoleRegistry() (*RoleRegistry, error) {
	file, err := LoadRoles()
	if err != nil {
		return nil, err
	}
	if len(file.Roles) == 0 {
		return nil, errors.New("no roles loaded from roles.json")
	}
	return NewRoleRegistry(file), nil
}

// GetByID returns the role definition with the given ID, or nil if not found.
func (r *RoleRegistry) GetByID(id string) *RoleDef {
	return r.roles[id]
}

// All returns all role definitions.
func (r *RoleRegistry) All() []RoleDef {
	return r.all
}

// Count returns the number of roles in the registry.
func (r *RoleRegistry) Count() int {
	return len(r.all)
}

// Palette maps each role glyph to its display color, plus the dead marker.
func (r *RoleRegistry) Palette(deadGlyph rune) map[rune]tcell.Color {
	palette := make(map[rune]tcell.Color, len(r.all)+1)
	for i := range r.all {
		palette[r.all[i].GlyphRune()] = r.all[i].TCellColor()
	}
	palette[deadGlyph] = r.deadColor
	return palette
}

// ItemColor returns the color used for items on the map.
func (r *RoleRegistry) ItemColor() tcell.Color {
	return r.itemColor
}

// =============================================================================
// SpellRegistry
// =============================================================================

// SpellRegistry holds loaded spell definitions keyed by casting name.
type SpellRegistry struct {
	spells map[string]*SpellDef
	all    []SpellDef
}

// NewSpellRegistry creates a registry from loaded spell definitions.
func NewSpellRegistry(spells []SpellDef) *SpellRegistry {
	registry := &SpellRegistry{
		spells: make(map[string]*SpellDef),
		all:    spells,
	}
	for i := range spells {
		registry.spells[spells[i].ID] = &spells[i]
	}
	return registry
}

// LoadSpellRegistry loads and creates a registry from the embedded spells.json.
func LoadSpellRegistry() (*SpellRegistry, error) {
	spells, err := LoadSpells()
	if err != nil {
		return nil, err
	}
	if len(spells) == 0 {
		return nil, errors.New("no spells loaded from spells.json")
	}
	return NewSpellRegistry(spells), nil
}

// MustLoadSpellRegistry loads a registry, panicking on error.
func MustLoadSpellRegistry() *SpellRegistry {
	registry, err := LoadSpellRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the spell with the given casting name, or nil if not found.
func (r *SpellRegistry) GetByID(id string) *SpellDef {
	return r.spells[id]
}

// All returns all spell definitions.
func (r *SpellRegistry) All() []SpellDef {
	return r.all
}

// Count returns the number of spells in the registry.
func (r *SpellRegistry) Count() int {
	return len(r.all)
}
