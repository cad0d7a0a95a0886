package arena

import (
	"fmt"

	"github.com/samdwyer/gridquest/internal/combat"
	"github.com/samdwyer/gridquest/internal/entity"
	"github.com/samdwyer/gridquest/internal/world"
)

// MsgBlocked is the status shown when a move targets an occupied cell.
const MsgBlocked = "Position is occupied, try another move."

// Fighter is the capability every role variant shares: position, HP,
// movement, melee and enemy queries.
type Fighter interface {
	combat.Combatant

	Base() *entity.Character
	OnGrid() bool
	Position() (int, int)
	Distance(other Fighter) (dx, dy int)

	NewPos(dir world.Direction) (int, int)
	Move(dir world.Direction) bool
	Attack(target Fighter) combat.AttackResult
	Remove()

	EnemiesAtDistance(dist int) []*Enemy
	Enemies(maxDist int) []*Enemy
	AliveEnemiesAtDistance(dist int) []*Enemy
	AliveEnemies(maxDist int) []*Enemy
	ItemsAtDistance(dist int) []entity.Inspectable
}

// Actor binds a character to the arena it lives in. Every role variant
// embeds one.
type Actor struct {
	*entity.Character

	arena  *Arena
	onGrid bool
}

// Base returns the underlying character state.
func (a *Actor) Base() *entity.Character { return a.Character }

// OnGrid reports whether the character still occupies a cell.
// Removed characters are inert.
func (a *Actor) OnGrid() bool { return a.onGrid }

// Distance returns the absolute per-axis difference to other.
// It is not wrapped: two characters on opposite edges are far apart.
func (a *Actor) Distance(other Fighter) (dx, dy int) {
	ox, oy := other.Position()
	return abs(ox - a.X), abs(oy - a.Y)
}

// NewPos returns the cell one step in dir, wrapped around the grid edges.
func (a *Actor) NewPos(dir world.Direction) (int, int) {
	dx, dy := dir.Delta()
	return a.arena.grid.Wrap(a.X+dx, a.Y+dy)
}

// Move steps one cell in dir. A blocked move emits MsgBlocked and leaves the
// character where it was. Returns true if the character moved.
func (a *Actor) Move(dir world.Direction) bool {
	if !a.onGrid {
		return false
	}
	x, y := a.NewPos(dir)
	if a.arena.grid.IsOccupied(x, y) {
		a.arena.SetStatus(MsgBlocked)
		return false
	}

	a.arena.grid.Remove(a.ID, a.X, a.Y)
	a.SetPosition(x, y)
	if err := a.arena.grid.Place(a.ID, x, y); err != nil {
		panic(fmt.Sprintf("arena: move %d to free cell: %v", a.ID, err))
	}
	return true
}

// Attack performs a melee attack on an orthogonally adjacent target.
// Out-of-range attacks, attacks on removed targets and attacks on the dead
// deal no damage and emit a flavor line instead. A removed attacker does nothing.
func (a *Actor) Attack(target Fighter) combat.AttackResult {
	if !a.onGrid {
		return combat.AttackResult{Outcome: combat.OutcomeOutOfRange}
	}

	if !target.OnGrid() || !adjacent(a.Distance(target)) {
		msg := combat.Pick(a.arena.rng, combat.MissLines)
		a.arena.SetStatus(msg)
		return combat.AttackResult{Outcome: combat.OutcomeOutOfRange, Message: msg}
	}

	if !target.IsAlive() {
		msg := combat.Pick(a.arena.rng, combat.AlreadyDeadLines)
		a.arena.SetStatus(msg)
		return combat.AttackResult{Outcome: combat.OutcomeAlreadyDead, Message: msg}
	}

	roll := a.arena.roller.Roll(a)
	target.Harm(roll.Damage)
	result := combat.AttackResult{
		Outcome: combat.OutcomeHit,
		Damage:  roll.Damage,
		Killed:  !target.IsAlive(),
	}

	defender := target.Base()
	switch {
	case defender.Role == entity.RolePlayer:
		result.Message = combat.DefenderHitMessage(roll.Damage)
	case a.Role == entity.RolePlayer:
		result.Message = combat.AttackerHitMessage(roll.Damage, target, defender.Glyph)
	}
	a.arena.SetStatus(result.Message)

	a.arena.logger.Debug("melee hit",
		"attacker", a.ID, "defender", defender.ID,
		"worst", roll.Worst, "best", roll.Best, "base", roll.Base,
		"damage", roll.Damage, "killed", result.Killed)
	return result
}

// Remove takes the character off the grid. It stays in the entity table.
func (a *Actor) Remove() {
	if !a.onGrid {
		return
	}
	a.arena.grid.Remove(a.ID, a.X, a.Y)
	a.onGrid = false
	a.arena.logger.Debug("removed character", "id", a.ID, "role", a.Role.ID(), "x", a.X, "y", a.Y)
}

// =============================================================================
// Queries
// =============================================================================

// ring returns the four cells exactly dist steps away, in the order
// +x, -x, +y, -y.
func (a *Actor) ring(dist int) [4][2]int {
	g := a.arena.grid
	var cells [4][2]int
	cells[0][0], cells[0][1] = g.Wrap(a.X+dist, a.Y)
	cells[1][0], cells[1][1] = g.Wrap(a.X-dist, a.Y)
	cells[2][0], cells[2][1] = g.Wrap(a.X, a.Y+dist)
	cells[3][0], cells[3][1] = g.Wrap(a.X, a.Y-dist)
	return cells
}

// EnemiesAtDistance returns enemies, dead or alive, in the four cells
// exactly dist steps away. On small grids the same enemy may appear twice.
// Distances below 1 find nothing.
func (a *Actor) EnemiesAtDistance(dist int) []*Enemy {
	if !a.onGrid || dist < 1 {
		return nil
	}
	var out []*Enemy
	for _, cell := range a.ring(dist) {
		id := a.arena.grid.OccupantAt(cell[0], cell[1])
		if e, ok := a.arena.fighter(id).(*Enemy); ok {
			out = append(out, e)
		}
	}
	return out
}

// Enemies returns the enemies at distances 1..maxDist, nearest first.
func (a *Actor) Enemies(maxDist int) []*Enemy {
	var out []*Enemy
	for d := 1; d <= maxDist; d++ {
		out = append(out, a.EnemiesAtDistance(d)...)
	}
	return out
}

// AliveEnemiesAtDistance is EnemiesAtDistance filtered to HP > 0.
func (a *Actor) AliveEnemiesAtDistance(dist int) []*Enemy {
	return alive(a.EnemiesAtDistance(dist))
}

// AliveEnemies is Enemies filtered to HP > 0.
func (a *Actor) AliveEnemies(maxDist int) []*Enemy {
	return alive(a.Enemies(maxDist))
}

// ItemsAtDistance returns items in the four cells exactly dist steps away.
func (a *Actor) ItemsAtDistance(dist int) []entity.Inspectable {
	if !a.onGrid || dist < 1 {
		return nil
	}
	var out []entity.Inspectable
	for _, cell := range a.ring(dist) {
		if it := a.arena.ItemAt(cell[0], cell[1]); it != nil {
			out = append(out, it)
		}
	}
	return out
}

func alive(enemies []*Enemy) []*Enemy {
	var out []*Enemy
	for _, e := range enemies {
		if e.HP > 0 {
			out = append(out, e)
		}
	}
	return out
}

// adjacent reports whether a per-axis distance is exactly one orthogonal step.
func adjacent(dx, dy int) bool {
	return alongAxis(dx, dy, 1)
}

// alongAxis reports whether the distance is exactly n on one axis and 0 on the other.
func alongAxis(dx, dy, n int) bool {
	return (dx == n && dy == 0) || (dx == 0 && dy == n)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
