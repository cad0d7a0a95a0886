package entity

import (
	"github.com/samdwyer/gridquest/internal/combat"
	"github.com/samdwyer/gridquest/internal/gamedata"
	"github.com/samdwyer/gridquest/internal/world"
)

// Character is the positional and combat state shared by every role.
// Grid bookkeeping lives in the arena; Character only stores where it thinks it is.
type Character struct {
	ID    world.EntityID
	Role  Role
	Name  string
	X, Y  int
	Glyph rune

	HP, MaxHP int
	Damage    int
}

// NewCharacter creates a character with full HP at (x, y).
// A non-positive damage falls back to DefaultDamage.
func NewCharacter(role Role, x, y, hp, damage int) *Character {
	if damage <= 0 {
		damage = DefaultDamage
	}
	return &Character{
		Role:   role,
		Name:   role.String(),
		X:      x,
		Y:      y,
		Glyph:  role.Symbol(),
		HP:     hp,
		MaxHP:  hp,
		Damage: damage,
	}
}

// InitFromRoleDef initializes stats from a role definition.
func (c *Character) InitFromRoleDef(def *gamedata.RoleDef) {
	if def == nil {
		return
	}
	c.Name = def.Name
	c.Glyph = def.GlyphRune()
	c.HP = def.HP
	c.MaxHP = def.HP
	c.Damage = def.Damage
	if c.Damage <= 0 {
		c.Damage = DefaultDamage
	}
}

// Position returns the stored coordinates.
func (c *Character) Position() (int, int) {
	return c.X, c.Y
}

// SetPosition updates the stored coordinates.
func (c *Character) SetPosition(x, y int) {
	c.X = x
	c.Y = y
}

// Condition returns HP as a percentage of MaxHP, floored, in [0,100].
func (c *Character) Condition() int {
	if c.MaxHP <= 0 {
		return 0
	}
	return c.HP * 100 / c.MaxHP
}

// Harm subtracts damage from HP. Reaching 0 marks the character dead;
// HP never goes negative. Negative damage is ignored.
func (c *Character) Harm(damage int) {
	if damage < 0 {
		return
	}
	c.HP -= damage
	if c.HP <= 0 {
		c.HP = 0
		c.Glyph = GlyphDead
	}
}

// Heal restores HP up to MaxHP and returns the amount actually healed.
// Dead characters are not revived.
func (c *Character) Heal(amount int) int {
	if amount <= 0 || c.HP <= 0 {
		return 0
	}
	actual := amount
	if c.HP+actual > c.MaxHP {
		actual = c.MaxHP - c.HP
	}
	c.HP += actual
	return actual
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the character's name.
func (c *Character) GetName() string { return c.Name }

// IsAlive returns true if the character has HP remaining.
func (c *Character) IsAlive() bool { return c.HP > 0 }

// GetHP returns current HP.
func (c *Character) GetHP() int { return c.HP }

// GetMaxHP returns maximum HP.
func (c *Character) GetMaxHP() int { return c.MaxHP }

// GetDamage returns the base damage rating.
func (c *Character) GetDamage() int { return c.Damage }

// Ensure Character implements combat.Combatant
var _ combat.Combatant = (*Character)(nil)
