package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/gridquest/internal/gamedata"
)

func TestRoleStrings(t *testing.T) {
	tests := []struct {
		role   Role
		name   string
		id     string
		symbol rune
	}{
		{RolePlayer, "Player", "player", 'S'},
		{RoleEnemy, "Enemy", "enemy", 'B'},
		{RoleWizard, "Wizard", "wizard", 'W'},
		{RoleArcher, "Archer", "archer", 'A'},
		{Role(99), "Unknown", "unknown", '?'},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.role.String())
		assert.Equal(t, tt.id, tt.role.ID())
		assert.Equal(t, tt.symbol, tt.role.Symbol())
	}

	r, ok := ParseRole("wizard")
	assert.True(t, ok)
	assert.Equal(t, RoleWizard, r)
	_, ok = ParseRole("bard")
	assert.False(t, ok)
}

func TestNewCharacter(t *testing.T) {
	c := NewCharacter(RoleEnemy, 5, 6, 20, 0)
	assert.Equal(t, 20, c.HP)
	assert.Equal(t, 20, c.MaxHP)
	assert.Equal(t, DefaultDamage, c.Damage)
	assert.Equal(t, 'B', c.Glyph)
	x, y := c.Position()
	assert.Equal(t, [2]int{5, 6}, [2]int{x, y})
	assert.True(t, c.IsAlive())
}

func TestHarmNeverNegative(t *testing.T) {
	for _, dmg := range []int{0, 1, 19, 20, 21, 25, 1000} {
		c := NewCharacter(RoleEnemy, 0, 0, 20, 10)
		c.Harm(dmg)
		assert.GreaterOrEqual(t, c.HP, 0, "damage %d", dmg)
		if dmg >= 20 {
			assert.Equal(t, 0, c.HP)
			assert.Equal(t, GlyphDead, c.Glyph)
			assert.False(t, c.IsAlive())
		} else {
			assert.Equal(t, 20-dmg, c.HP)
			assert.Equal(t, 'B', c.Glyph)
		}
	}
}

func TestHarmToDeathScenario(t *testing.T) {
	enemy := NewCharacter(RoleEnemy, 5, 6, 20, 10)
	enemy.Harm(25)
	assert.Equal(t, 0, enemy.HP)
	assert.Equal(t, 'X', enemy.Glyph)
}

func TestHarmIgnoresNegative(t *testing.T) {
	c := NewCharacter(RolePlayer, 0, 0, 30, 10)
	c.Harm(-5)
	assert.Equal(t, 30, c.HP)
}

func TestConditionMonotonic(t *testing.T) {
	c := NewCharacter(RolePlayer, 0, 0, 37, 10)
	prev := -1
	for hp := 0; hp <= 37; hp++ {
		c.HP = hp
		cond := c.Condition()
		assert.GreaterOrEqual(t, cond, prev, "hp=%d", hp)
		assert.GreaterOrEqual(t, cond, 0)
		assert.LessOrEqual(t, cond, 100)
		prev = cond
	}
	assert.Equal(t, 100, c.Condition())

	c.HP = 12
	assert.Equal(t, 32, c.Condition()) // 1200/37 = 32.4
}

func TestHealClampsToMax(t *testing.T) {
	c := NewCharacter(RoleWizard, 0, 0, 20, 10)
	assert.Equal(t, 0, c.Heal(3), "full HP heals nothing")
	assert.Equal(t, 20, c.HP)

	c.HP = 18
	assert.Equal(t, 2, c.Heal(3))
	assert.Equal(t, 20, c.HP)

	c.Harm(100)
	assert.Equal(t, 0, c.Heal(5), "dead characters stay dead")
}

func TestInitFromRoleDef(t *testing.T) {
	c := NewCharacter(RoleArcher, 1, 1, 5, 5)
	c.InitFromRoleDef(&gamedata.RoleDef{ID: "archer", Name: "Archer", Glyph: "A", HP: 25, Damage: 7})
	assert.Equal(t, "Archer", c.Name)
	assert.Equal(t, 25, c.HP)
	assert.Equal(t, 25, c.MaxHP)
	assert.Equal(t, 7, c.Damage)

	c.InitFromRoleDef(nil)
	assert.Equal(t, 25, c.HP)
}

func TestItemWeightAndInspect(t *testing.T) {
	tests := []struct {
		weight int
		want   string
	}{
		{250, "250g"},
		{999, "999g"},
		{1000, "1kg"},
		{1500, "1.5kg"},
		{2250, "2.25kg"},
	}
	for _, tt := range tests {
		it := NewItem("rock", 0, 0, '*', tt.weight, 5)
		assert.Equal(t, tt.want, it.WeightString())
	}

	it := NewItem("rock", 0, 0, '*', 1500, 6)
	assert.Equal(t, "Quack. Item weighs about 1.5kg, and is in good condition.", it.Inspect())

	assert.Equal(t, 0, NewItem("x", 0, 0, '*', 1, -3).State)
	assert.Equal(t, MaxState, NewItem("x", 0, 0, '*', 1, 42).State)
}

func TestWeapon(t *testing.T) {
	club := NewWeapon("club", 0, 0, '!', 800, 3, WeaponKind(7))
	assert.Equal(t, Bludgeon, club.Kind, "unknown kinds default to bludgeon")
	assert.Equal(t, 0, club.BleedMultiplier())
	assert.Equal(t, "This is a bludgeoning weapon, in shabby condition.", club.Inspect())

	spear := NewWeapon("spear", 0, 0, '|', 1200, 7, Pierce)
	assert.Equal(t, 1, spear.BleedMultiplier())
	assert.Equal(t, "This is a piercing weapon, in excellent condition.", spear.Inspect())
}

func TestLongswordSharpen(t *testing.T) {
	sword := NewLongsword(0, 0, 1400, 7)
	assert.Equal(t, Slash, sword.Kind)
	assert.Equal(t, 2, sword.BleedMultiplier())

	assert.Equal(t, "Sharpness increases to 8", sword.Sharpen())
	assert.Equal(t, "Sharpness increases to 9", sword.Sharpen())
	assert.Equal(t, "Sharpness increases to 9", sword.Sharpen())
	assert.Equal(t, "super-fantastic", sword.ConditionLabel())
}

func TestInspectable(t *testing.T) {
	things := []Inspectable{
		NewItem("rock", 1, 2, '*', 250, 0),
		NewWeapon("spear", 3, 4, '|', 1200, 7, Pierce),
		NewLongsword(5, 6, 1400, 6),
	}
	want := []string{
		"Quack. Item weighs about 250g, and is in broken condition.",
		"This is a piercing weapon, in excellent condition.",
		"This is a slashing weapon, in good condition.",
	}
	for i, thing := range things {
		assert.Equal(t, want[i], thing.Inspect())
	}

	x, y := things[2].Base().Position()
	assert.Equal(t, [2]int{5, 6}, [2]int{x, y})
	assert.Equal(t, '/', things[2].Base().Glyph)
}
