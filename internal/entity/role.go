// Package entity provides game entities: characters and the items lying on the grid.
package entity

// Role represents which variant of character an entity is.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
	RoleWizard
	RoleArcher
)

// GlyphDead replaces a character's glyph once its HP reaches 0.
const GlyphDead = 'X'

// DefaultDamage is the base damage rating when none is configured.
const DefaultDamage = 10

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "Player"
	case RoleEnemy:
		return "Enemy"
	case RoleWizard:
		return "Wizard"
	case RoleArcher:
		return "Archer"
	default:
		return "Unknown"
	}
}

// ID returns the role identifier for data lookup.
func (r Role) ID() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleEnemy:
		return "enemy"
	case RoleWizard:
		return "wizard"
	case RoleArcher:
		return "archer"
	default:
		return "unknown"
	}
}

// Symbol returns the default display glyph for a role.
func (r Role) Symbol() rune {
	switch r {
	case RolePlayer:
		return 'S'
	case RoleEnemy:
		return 'B'
	case RoleWizard:
		return 'W'
	case RoleArcher:
		return 'A'
	default:
		return '?'
	}
}

// ParseRole converts a role identifier back into a Role.
func ParseRole(id string) (Role, bool) {
	for _, r := range []Role{RolePlayer, RoleEnemy, RoleWizard, RoleArcher} {
		if r.ID() == id {
			return r, true
		}
	}
	return 0, false
}
