// Package arena is the rule engine: it owns the entity table and the grid,
// and implements movement, melee, spells, ranged attacks and enemy decisions.
package arena

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/samdwyer/gridquest/internal/combat"
	"github.com/samdwyer/gridquest/internal/entity"
	"github.com/samdwyer/gridquest/internal/gamedata"
	"github.com/samdwyer/gridquest/internal/world"
)

// DefaultFleeRetries bounds how many directions a fleeing enemy samples
// before giving up and idling.
const DefaultFleeRetries = 32

// freeCellSamples is how many random cells RandomFreeCell tries before scanning.
const freeCellSamples = 64

// StatusSink receives user-facing status messages.
type StatusSink interface {
	SetStatus(msg string)
}

// Options configures a new Arena. Zero values select defaults.
type Options struct {
	Width       int
	Height      int
	Rand        *rand.Rand
	Status      StatusSink // nil discards messages
	Spells      *gamedata.SpellRegistry
	FleeRetries int
	Logger      *slog.Logger
}

// Arena owns every entity in play and the grid they stand on.
// The grid stores IDs only; the tables here own the entities.
type Arena struct {
	grid        *world.Grid
	rng         *rand.Rand
	roller      *combat.Roller
	status      StatusSink
	spells      *gamedata.SpellRegistry
	fleeRetries int
	logger      *slog.Logger

	lastID     world.EntityID
	fighters   map[world.EntityID]Fighter
	order      []world.EntityID
	items      map[world.EntityID]entity.Inspectable
}

// New creates an empty arena.
func New(opts Options) *Arena {
	if opts.Width <= 0 {
		opts.Width = world.DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = world.DefaultHeight
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Spells == nil {
		opts.Spells = gamedata.MustLoadSpellRegistry()
	}
	if opts.FleeRetries <= 0 {
		opts.FleeRetries = DefaultFleeRetries
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	return &Arena{
		grid:        world.NewGrid(opts.Width, opts.Height),
		rng:         opts.Rand,
		roller:      combat.NewRoller(opts.Rand),
		status:      opts.Status,
		spells:      opts.Spells,
		fleeRetries: opts.FleeRetries,
		logger:      opts.Logger,
		fighters:    make(map[world.EntityID]Fighter),
		items:       make(map[world.EntityID]entity.Inspectable),
	}
}

// Grid returns the occupancy grid. Callers must not place or remove on it directly.
func (a *Arena) Grid() *world.Grid { return a.grid }

// Width returns the grid width.
func (a *Arena) Width() int { return a.grid.Width() }

// Height returns the grid height.
func (a *Arena) Height() int { return a.grid.Height() }

// SetStatus forwards msg to the status sink, if any.
func (a *Arena) SetStatus(msg string) {
	if a.status != nil && msg != "" {
		a.status.SetStatus(msg)
	}
}

// =============================================================================
// Spawning
// =============================================================================

// Spawn places a new character of the given role with full HP at (x, y).
// A non-positive damage selects entity.DefaultDamage.
func (a *Arena) Spawn(role entity.Role, x, y, hp, damage int) (Fighter, error) {
	return a.spawn(entity.NewCharacter(role, x, y, hp, damage))
}

// SpawnFromDef places a character whose stats come from a role definition.
func (a *Arena) SpawnFromDef(def *gamedata.RoleDef, x, y int) (Fighter, error) {
	if def == nil {
		return nil, fmt.Errorf("spawn at (%d,%d): nil role definition", x, y)
	}
	role, ok := entity.ParseRole(def.ID)
	if !ok {
		return nil, fmt.Errorf("spawn at (%d,%d): unknown role %q", x, y, def.ID)
	}
	c := entity.NewCharacter(role, x, y, def.HP, def.Damage)
	c.InitFromRoleDef(def)
	return a.spawn(c)
}

// SpawnPlayer places a player with the default damage rating.
func (a *Arena) SpawnPlayer(x, y, hp int) (*Player, error) {
	f, err := a.Spawn(entity.RolePlayer, x, y, hp, entity.DefaultDamage)
	if err != nil {
		return nil, err
	}
	return f.(*Player), nil
}

// SpawnEnemy places an enemy with the default damage rating.
func (a *Arena) SpawnEnemy(x, y, hp int) (*Enemy, error) {
	f, err := a.Spawn(entity.RoleEnemy, x, y, hp, entity.DefaultDamage)
	if err != nil {
		return nil, err
	}
	return f.(*Enemy), nil
}

// SpawnWizard places a wizard with the default damage rating.
func (a *Arena) SpawnWizard(x, y, hp int) (*Wizard, error) {
	f, err := a.Spawn(entity.RoleWizard, x, y, hp, entity.DefaultDamage)
	if err != nil {
		return nil, err
	}
	return f.(*Wizard), nil
}

// SpawnArcher places an archer with the default damage rating.
func (a *Arena) SpawnArcher(x, y, hp int) (*Archer, error) {
	f, err := a.Spawn(entity.RoleArcher, x, y, hp, entity.DefaultDamage)
	if err != nil {
		return nil, err
	}
	return f.(*Archer), nil
}

func (a *Arena) spawn(c *entity.Character) (Fighter, error) {
	if c.HP <= 0 {
		return nil, fmt.Errorf("spawn %s at (%d,%d): max HP must be positive, got %d", c.Role, c.X, c.Y, c.HP)
	}
	id := a.lastID + 1
	if err := a.grid.Place(id, c.X, c.Y); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", c.Role, err)
	}
	a.lastID = id
	c.ID = id

	f := newFighter(&Actor{Character: c, arena: a, onGrid: true})
	a.fighters[id] = f
	a.order = append(a.order, id)

	a.logger.Debug("spawned character",
		"id", id, "role", c.Role.ID(), "x", c.X, "y", c.Y, "hp", c.HP, "damage", c.Damage)
	return f, nil
}

// PlaceItem puts an item on the grid at its stored position and assigns its ID.
func (a *Arena) PlaceItem(it entity.Inspectable) error {
	base := it.Base()
	x, y := base.Position()
	id := a.lastID + 1
	if err := a.grid.Place(id, x, y); err != nil {
		return fmt.Errorf("place item %q: %w", base.Name, err)
	}
	a.lastID = id
	base.ID = id
	a.items[id] = it

	a.logger.Debug("placed item", "id", id, "name", base.Name, "x", x, "y", y)
	return nil
}

// RandomFreeCell returns an unoccupied cell, or ok=false when the grid is full.
func (a *Arena) RandomFreeCell() (x, y int, ok bool) {
	if a.grid.Free() == 0 {
		return 0, 0, false
	}
	for i := 0; i < freeCellSamples; i++ {
		x, y = a.rng.Intn(a.grid.Width()), a.rng.Intn(a.grid.Height())
		if !a.grid.IsOccupied(x, y) {
			return x, y, true
		}
	}
	for y = 0; y < a.grid.Height(); y++ {
		for x = 0; x < a.grid.Width(); x++ {
			if !a.grid.IsOccupied(x, y) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// =============================================================================
// Lookups
// =============================================================================

// fighter returns the character with the given ID, or nil.
// Removed characters are still returned; check OnGrid.
func (a *Arena) fighter(id world.EntityID) Fighter {
	return a.fighters[id]
}

// Characters returns every character in spawn order, including removed ones.
func (a *Arena) Characters() []Fighter {
	out := make([]Fighter, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.fighters[id])
	}
	return out
}

// Enemies returns every enemy in spawn order, including dead and removed ones.
func (a *Arena) Enemies() []*Enemy {
	var out []*Enemy
	for _, id := range a.order {
		if e, ok := a.fighters[id].(*Enemy); ok {
			out = append(out, e)
		}
	}
	return out
}

// AliveEnemyCount returns the number of living enemies still on the grid.
func (a *Arena) AliveEnemyCount() int {
	n := 0
	for _, e := range a.Enemies() {
		if e.IsAlive() && e.OnGrid() {
			n++
		}
	}
	return n
}

// ItemAt returns the item occupying (x, y), or nil.
func (a *Arena) ItemAt(x, y int) entity.Inspectable {
	return a.items[a.grid.OccupantAt(x, y)]
}

// GlyphAt returns the glyph of whatever occupies (x, y).
func (a *Arena) GlyphAt(x, y int) (rune, bool) {
	id := a.grid.OccupantAt(x, y)
	if id == world.NilEntity {
		return 0, false
	}
	if f := a.fighter(id); f != nil {
		return f.Base().Glyph, true
	}
	if it, ok := a.items[id]; ok {
		return it.Base().Glyph, true
	}
	return 0, false
}
