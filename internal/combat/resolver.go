// Package combat provides attack damage rolls and outcome messages for GridQuest.
package combat

import (
	"fmt"
	"math"
	"math/rand"
)

// Combatant is the interface for anything that can deal or take a melee hit.
// Every role variant's character state implements it.
type Combatant interface {
	// Identity
	GetName() string
	IsAlive() bool

	// Stats
	GetHP() int
	GetMaxHP() int
	GetDamage() int
	Condition() int

	// Mutations
	Harm(damage int)
	Heal(amount int) int // Returns actual amount healed
}

// Outcome classifies how an attack attempt ended.
type Outcome int

const (
	// OutcomeOutOfRange - target not orthogonally adjacent, nothing happened
	OutcomeOutOfRange Outcome = iota
	// OutcomeAlreadyDead - target had no HP left, nothing happened
	OutcomeAlreadyDead
	// OutcomeHit - damage was rolled and applied
	OutcomeHit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOutOfRange:
		return "out_of_range"
	case OutcomeAlreadyDead:
		return "already_dead"
	case OutcomeHit:
		return "hit"
	default:
		return "unknown"
	}
}

// AttackResult contains the outcome of one attack attempt.
type AttackResult struct {
	Outcome Outcome
	Damage  int    // Damage applied (0 unless Outcome is OutcomeHit)
	Killed  bool   // True if this hit took the defender to 0 HP
	Message string // Status text emitted for the attempt, may be empty
}

// Roll holds the intermediate values of one damage roll.
type Roll struct {
	Worst  int // Lower bound of the condition-scaled range
	Best   int // Upper bound of the condition-scaled range
	Base   int // Value drawn from [Worst, Best) before jitter
	Damage int // Final damage after the one-step jitter
}

// Roller draws attack damage from an injected random source.
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a roller using rng for every draw.
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// Range returns the condition-scaled damage bounds for attacker:
// worst = round(damage * (condition/100)^0.5), best = round(damage * (condition/100)^0.25).
func Range(attacker Combatant) (worst, best int) {
	c := float64(attacker.Condition()) * 0.01
	d := float64(attacker.GetDamage())
	worst = int(math.Round(math.Pow(c, 0.5) * d))
	best = int(math.Round(math.Pow(c, 0.25) * d))
	return worst, best
}

// Roll computes attack damage for attacker.
//
// Stage one draws uniformly from [worst, best) (or takes best when the two
// are equal). Stage two redraws from [base-1, base], clamping the lower bound
// at 0 and the upper bound at the attacker's damage rating.
func (r *Roller) Roll(attacker Combatant) Roll {
	worst, best := Range(attacker)

	base := best
	if worst < best {
		base = worst + r.rng.Intn(best-worst)
	}

	lo, hi := base-1, base
	if base == 0 {
		lo = 0
	}
	if rating := attacker.GetDamage(); hi > rating {
		hi = rating
	}
	if lo > hi {
		lo = hi
	}
	damage := lo + r.rng.Intn(hi-lo+1)
	if damage < 0 {
		damage = 0
	}

	return Roll{Worst: worst, Best: best, Base: base, Damage: damage}
}

// AlreadyDeadLines are shown when attacking a target with 0 HP.
var AlreadyDeadLines = []string{
	"This body doesn't look delicious at all.",
	"You really want me to do this?",
	"Yeah, whatever!",
	"I killed it! What did you make me do!",
}

// MissLines are shown when the target is not orthogonally adjacent.
var MissLines = []string{
	"Woah! Kicking air really is fun!",
	"This would be totally ineffective!",
	"Just scaring the hiding velociraptors...",
}

// Pick returns a uniformly chosen line.
func Pick(rng *rand.Rand, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[rng.Intn(len(lines))]
}

// DefenderHitMessage is shown when the player-controlled character is hit.
func DefenderHitMessage(damage int) string {
	return fmt.Sprintf("You are being attacked: %d damage.", damage)
}

// AttackerHitMessage is shown when the player-controlled character lands a hit.
func AttackerHitMessage(damage int, defender Combatant, glyph rune) string {
	if !defender.IsAlive() {
		return fmt.Sprintf("You make %d damage: your enemy is dead.", damage)
	}
	return fmt.Sprintf("You make %d damage: %c has %d/%d hp left.",
		damage, glyph, defender.GetHP(), defender.GetMaxHP())
}
