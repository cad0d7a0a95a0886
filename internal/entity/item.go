package entity

import (
	"fmt"
	"strconv"

	"github.com/samdwyer/gridquest/internal/world"
)

// Conditions are the descriptive labels for Item.State, worst to best.
var Conditions = [10]string{
	"broken", "horrible", "miserable", "shabby", "poor",
	"decent", "good", "excellent", "awesome", "super-fantastic",
}

// MaxState is the highest valid Item.State index.
const MaxState = len(Conditions) - 1

// WeaponKind is the damage category of a weapon. Its index doubles as the
// bleed multiplier.
type WeaponKind int

const (
	Bludgeon WeaponKind = iota
	Pierce
	Slash
)

// String returns the adjective used in inspection text.
func (k WeaponKind) String() string {
	switch k {
	case Pierce:
		return "piercing"
	case Slash:
		return "slashing"
	default:
		return "bludgeoning"
	}
}

// Item is an inert, inspectable object lying on the grid.
type Item struct {
	ID     world.EntityID
	Name   string
	X, Y   int
	Glyph  rune
	Weight int // grams
	State  int // index into Conditions
}

// NewItem creates an item; an out-of-range state is clamped into [0, MaxState].
func NewItem(name string, x, y int, glyph rune, weight, state int) *Item {
	return &Item{
		Name:   name,
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Weight: weight,
		State:  clampState(state),
	}
}

// Inspectable is anything lying on the grid that can be examined.
type Inspectable interface {
	Base() *Item
	Inspect() string
}

// Base returns the underlying item state.
func (i *Item) Base() *Item {
	return i
}

// Position returns the item's coordinates.
func (i *Item) Position() (int, int) {
	return i.X, i.Y
}

// ConditionLabel returns the descriptive label for the item's state.
func (i *Item) ConditionLabel() string {
	return Conditions[clampState(i.State)]
}

// WeightString formats the weight in grams, or kilograms from 1000 g up.
func (i *Item) WeightString() string {
	if i.Weight >= 1000 {
		return strconv.FormatFloat(float64(i.Weight)/1000, 'f', -1, 64) + "kg"
	}
	return strconv.Itoa(i.Weight) + "g"
}

// Inspect describes the item.
func (i *Item) Inspect() string {
	return fmt.Sprintf("Quack. Item weighs about %s, and is in %s condition.",
		i.WeightString(), i.ConditionLabel())
}

// Weapon is an item with a damage category.
type Weapon struct {
	Item
	Kind WeaponKind
}

// NewWeapon creates a weapon. Anything can be a weapon: unknown kinds default to Bludgeon.
func NewWeapon(name string, x, y int, glyph rune, weight, state int, kind WeaponKind) *Weapon {
	if kind < Bludgeon || kind > Slash {
		kind = Bludgeon
	}
	return &Weapon{
		Item: *NewItem(name, x, y, glyph, weight, state),
		Kind: kind,
	}
}

// BleedMultiplier returns the bleed factor for the weapon's kind.
func (w *Weapon) BleedMultiplier() int {
	return int(w.Kind)
}

// Inspect describes the weapon.
func (w *Weapon) Inspect() string {
	return fmt.Sprintf("This is a %s weapon, in %s condition.", w.Kind, w.ConditionLabel())
}

// Longsword is a slashing weapon that can be sharpened.
type Longsword struct {
	Weapon
}

// NewLongsword creates a longsword lying at (x, y).
func NewLongsword(x, y int, weight, state int) *Longsword {
	return &Longsword{Weapon: *NewWeapon("Longsword", x, y, '/', weight, state, Slash)}
}

// Sharpen improves the sword's state by one step, up to MaxState.
func (l *Longsword) Sharpen() string {
	if l.State < MaxState {
		l.State++
	}
	return "Sharpness increases to " + strconv.Itoa(l.State)
}

func clampState(s int) int {
	if s < 0 {
		return 0
	}
	if s > MaxState {
		return MaxState
	}
	return s
}
