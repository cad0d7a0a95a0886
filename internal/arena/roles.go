package arena

import (
	"fmt"

	"github.com/samdwyer/gridquest/internal/combat"
	"github.com/samdwyer/gridquest/internal/entity"
	"github.com/samdwyer/gridquest/internal/gamedata"
	"github.com/samdwyer/gridquest/internal/world"
)

const (
	// ArcherRange is the farthest an archer can shoot along one axis.
	ArcherRange = 5
	// ArcherDamage is the flat damage of a ranged attack.
	ArcherDamage = 5
)

// Caster can cast spells by name.
type Caster interface {
	Fighter
	CastSpell(name string, target Fighter) SpellResult
}

// RangedAttacker can hit targets at a distance.
type RangedAttacker interface {
	Fighter
	RangeAttack(target Fighter) combat.AttackResult
}

// AutonomousActor decides its own action each turn.
type AutonomousActor interface {
	Fighter
	Act(target Fighter, dirs []world.Direction) Decision
}

// Player is the character controlled by the user. It has no abilities
// beyond the shared ones.
type Player struct{ *Actor }

// Enemy acts on its own each turn.
type Enemy struct{ *Actor }

// Wizard casts spells.
type Wizard struct{ *Actor }

// Archer shoots at range.
type Archer struct{ *Actor }

var (
	_ Fighter         = (*Player)(nil)
	_ AutonomousActor = (*Enemy)(nil)
	_ Caster          = (*Wizard)(nil)
	_ RangedAttacker  = (*Archer)(nil)
)

func newFighter(act *Actor) Fighter {
	switch act.Role {
	case entity.RoleEnemy:
		return &Enemy{act}
	case entity.RoleWizard:
		return &Wizard{act}
	case entity.RoleArcher:
		return &Archer{act}
	default:
		return &Player{act}
	}
}

// =============================================================================
// Enemy
// =============================================================================

// Decision is the action an enemy chose for its turn.
type Decision int

const (
	// DecisionNone - the enemy is dead or off the grid and did nothing
	DecisionNone Decision = iota
	// DecisionIdle - the enemy chose to wait, or failed to find an escape
	DecisionIdle
	// DecisionFlee - the enemy moved one step in a random free direction
	DecisionFlee
	// DecisionFight - the enemy attacked the adjacent target
	DecisionFight
)

// String returns a human-readable decision name.
func (d Decision) String() string {
	switch d {
	case DecisionNone:
		return "none"
	case DecisionIdle:
		return "idle"
	case DecisionFlee:
		return "flee"
	case DecisionFight:
		return "fight"
	default:
		return "unknown"
	}
}

// Act picks uniformly among idling, fleeing and, when target is orthogonally
// adjacent, fighting it.
//
// Fleeing samples directions from dirs until one leads to a free cell. After
// the arena's flee retry limit the enemy idles instead.
func (e *Enemy) Act(target Fighter, dirs []world.Direction) Decision {
	if !e.IsAlive() || !e.onGrid {
		return DecisionNone
	}

	choices := []Decision{DecisionIdle, DecisionFlee}
	if target != nil && target.OnGrid() && adjacent(e.Distance(target)) {
		choices = append(choices, DecisionFight)
	}
	rng := e.arena.rng

	switch choice := choices[rng.Intn(len(choices))]; choice {
	case DecisionFlee:
		if len(dirs) == 0 {
			return DecisionIdle
		}
		for i := 0; i < e.arena.fleeRetries; i++ {
			dir := dirs[rng.Intn(len(dirs))]
			x, y := e.NewPos(dir)
			if !e.arena.grid.IsOccupied(x, y) {
				e.Move(dir)
				return DecisionFlee
			}
		}
		e.arena.logger.Debug("flee retries exhausted", "id", e.ID, "x", e.X, "y", e.Y)
		return DecisionIdle
	case DecisionFight:
		e.Attack(target)
		return DecisionFight
	default:
		return DecisionIdle
	}
}

// =============================================================================
// Wizard
// =============================================================================

// SpellResult describes the outcome of a cast.
type SpellResult struct {
	Spell   *gamedata.SpellDef // nil if the name is unknown
	Cast    bool               // true if the target was in range and the effect applied
	Damage  int
	Healed  int
	Message string
}

// CastSpell casts the named spell at target. Unknown names emit a notice;
// a target outside the spell's exact range is left untouched.
func (w *Wizard) CastSpell(name string, target Fighter) SpellResult {
	spell := w.arena.spells.GetByID(name)
	if spell == nil {
		msg := fmt.Sprintf("The wizard does not know the spell '%s' yet.", name)
		w.arena.SetStatus(msg)
		return SpellResult{Message: msg}
	}

	result := SpellResult{Spell: spell}
	if !w.onGrid || target == nil || !target.OnGrid() {
		return result
	}
	if dx, dy := w.Distance(target); !alongAxis(dx, dy, spell.Range) {
		return result
	}

	switch spell.Effect {
	case gamedata.SpellRemove:
		target.Remove()
		result.Cast = true
		result.Message = fmt.Sprintf("%s vanishes from the world.", target.GetName())
	case gamedata.SpellDrain:
		target.Harm(spell.Power)
		result.Damage = spell.Power
		result.Healed = w.Heal(spell.Power)
		result.Cast = true
		result.Message = fmt.Sprintf("%s drains %d hp from %s.", w.Name, spell.Power, target.GetName())
	default:
		return result
	}
	w.arena.SetStatus(result.Message)

	w.arena.logger.Debug("spell cast",
		"caster", w.ID, "spell", spell.ID, "target", target.Base().ID,
		"damage", result.Damage, "healed", result.Healed)
	return result
}

// =============================================================================
// Archer
// =============================================================================

// RangeAttack deals a flat ArcherDamage to a target at most ArcherRange steps
// away along one axis, bypassing the damage roll.
func (a *Archer) RangeAttack(target Fighter) combat.AttackResult {
	if !a.onGrid || target == nil || !target.OnGrid() {
		return combat.AttackResult{Outcome: combat.OutcomeOutOfRange}
	}
	dx, dy := a.Distance(target)
	if !((dx <= ArcherRange && dy == 0) || (dx == 0 && dy <= ArcherRange)) {
		return combat.AttackResult{Outcome: combat.OutcomeOutOfRange}
	}

	target.Harm(ArcherDamage)
	result := combat.AttackResult{
		Outcome: combat.OutcomeHit,
		Damage:  ArcherDamage,
		Killed:  !target.IsAlive(),
		Message: fmt.Sprintf("The arrow hits %s for %d damage.", target.GetName(), ArcherDamage),
	}
	a.arena.SetStatus(result.Message)

	a.arena.logger.Debug("ranged hit",
		"attacker", a.ID, "defender", target.Base().ID, "damage", ArcherDamage, "killed", result.Killed)
	return result
}
