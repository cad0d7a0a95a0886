package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridquest/internal/arena"
	"github.com/samdwyer/gridquest/internal/combat"
	"github.com/samdwyer/gridquest/internal/entity"
	"github.com/samdwyer/gridquest/internal/gamedata"
	"github.com/samdwyer/gridquest/internal/world"
)

// Step applies one command to the active party member. Commands that take a
// turn are followed by every enemy's move. Returns the resulting state.
func (g *Game) Step(ctx context.Context, cmd Command) State {
	if g.state.Over() {
		return g.state
	}

	if cmd.Action == ActionQuit {
		g.state = StateQuit
		g.endGame(ctx)
		return g.state
	}

	if !g.executePartyTurn(ctx, cmd) {
		return g.state
	}
	g.turns++

	if g.checkGameEnd() {
		g.endGame(ctx)
		return g.state
	}

	g.executeEnemyTurns(ctx)

	if g.checkGameEnd() {
		g.endGame(ctx)
	}
	return g.state
}

// executePartyTurn runs cmd for the active member. Returns true if the
// command used up the turn.
func (g *Game) executePartyTurn(ctx context.Context, cmd Command) bool {
	actor := g.Active()

	_, span := g.tracer.Start(ctx, "turn.player")
	defer span.End()
	span.SetAttributes(
		attribute.String("action", cmd.Action.String()),
		attribute.String("actor", actor.GetName()),
		attribute.Int("turn", g.turns),
	)

	if cmd.Action == ActionSwitch {
		g.switchMember()
		return false
	}
	if !actor.OnGrid() || !actor.IsAlive() {
		g.status.SetStatus(fmt.Sprintf("%s cannot act.", actor.GetName()))
		return false
	}

	if dir, ok := cmd.Action.Direction(); ok {
		moved := actor.Move(dir)
		span.SetAttributes(attribute.Bool("moved", moved))
		return true
	}

	switch cmd.Action {
	case ActionAttack:
		return g.attack(span, actor)
	case ActionCast:
		return g.cast(span, actor, cmd.Spell)
	case ActionShoot:
		return g.shoot(span, actor)
	case ActionInspect:
		g.inspect(actor)
		return false
	case ActionSharpen:
		return g.sharpen(actor)
	case ActionWait:
		return true
	}
	return false
}

// attack strikes the first adjacent living enemy. With none adjacent it
// swings at a body or at the nearest enemy, which only yields flavor text.
func (g *Game) attack(span trace.Span, actor arena.Fighter) bool {
	target := g.reachable(actor, actor.AliveEnemies(1), 1)
	if target == nil {
		target = g.reachable(actor, actor.Enemies(1), 1)
	}
	if target == nil {
		target = g.nearestAliveEnemy(actor)
	}
	if target == nil {
		g.status.SetStatus("There is nothing to attack.")
		return false
	}

	result := actor.Attack(target)
	if result.Outcome == combat.OutcomeHit && result.Message == "" {
		g.status.SetStatus(hitMessage(actor, target, result.Damage))
	}
	span.SetAttributes(
		attribute.String("outcome", result.Outcome.String()),
		attribute.Int("damage", result.Damage),
		attribute.Bool("killed", result.Killed),
		attribute.Int("target.hp", target.GetHP()),
	)
	return true
}

// cast has the active member cast a spell at the first enemy at the
// spell's exact range.
func (g *Game) cast(span trace.Span, actor arena.Fighter, name string) bool {
	caster, ok := actor.(arena.Caster)
	if !ok {
		g.status.SetStatus(fmt.Sprintf("%s cannot cast spells.", actor.GetName()))
		return false
	}
	span.SetAttributes(attribute.String("spell", name))

	spell := g.spells.GetByID(name)
	if spell == nil {
		caster.CastSpell(name, nil)
		return false
	}

	var targets []*arena.Enemy
	if spell.Effect == gamedata.SpellRemove {
		targets = caster.EnemiesAtDistance(spell.Range)
	} else {
		targets = caster.AliveEnemiesAtDistance(spell.Range)
	}
	target := g.reachable(caster, targets, spell.Range)
	if target == nil {
		g.status.SetStatus(fmt.Sprintf("No target %d steps away for %s.", spell.Range, spell.Name))
		return false
	}

	result := caster.CastSpell(name, target)
	span.SetAttributes(
		attribute.Bool("cast", result.Cast),
		attribute.Int("damage", result.Damage),
		attribute.Int("healed", result.Healed),
	)
	return true
}

// shoot has an archer fire at the first living enemy within range.
func (g *Game) shoot(span trace.Span, actor arena.Fighter) bool {
	archer, ok := actor.(arena.RangedAttacker)
	if !ok {
		g.status.SetStatus(fmt.Sprintf("%s has no bow.", actor.GetName()))
		return false
	}

	var target *arena.Enemy
	for d := 1; d <= arena.ArcherRange && target == nil; d++ {
		target = g.reachable(archer, archer.AliveEnemiesAtDistance(d), d)
	}
	if target == nil {
		g.status.SetStatus("No enemy in range.")
		return false
	}

	result := archer.RangeAttack(target)
	span.SetAttributes(
		attribute.String("outcome", result.Outcome.String()),
		attribute.Int("damage", result.Damage),
		attribute.Bool("killed", result.Killed),
	)
	return true
}

// inspect describes the first adjacent item. It does not use up the turn.
func (g *Game) inspect(actor arena.Fighter) {
	items := actor.ItemsAtDistance(1)
	if len(items) == 0 {
		g.status.SetStatus("There is nothing here to inspect.")
		return
	}
	g.status.SetStatus(items[0].Inspect())
}

// sharpener is an item that can be sharpened.
type sharpener interface {
	Sharpen() string
}

// sharpen works on the first adjacent sharpenable item.
func (g *Game) sharpen(actor arena.Fighter) bool {
	for _, it := range actor.ItemsAtDistance(1) {
		if s, ok := it.(sharpener); ok {
			g.status.SetStatus(s.Sharpen())
			return true
		}
	}
	g.status.SetStatus("There is nothing here to sharpen.")
	return false
}

// switchMember hands control to the next party member still on the grid.
func (g *Game) switchMember() {
	for i := 1; i <= len(g.party); i++ {
		next := (g.active + i) % len(g.party)
		if m := g.party[next]; m.OnGrid() && m.IsAlive() {
			g.active = next
			g.status.Track(m)
			g.status.SetStatus(fmt.Sprintf("You now control the %s.", m.GetName()))
			return
		}
	}
}

// executeEnemyTurns lets every enemy act against the player.
func (g *Game) executeEnemyTurns(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "turn.enemies")
	defer span.End()

	decisions := map[arena.Decision]int{}
	dirs := world.AllDirections()
	for _, e := range g.arena.Enemies() {
		decisions[e.Act(g.player, dirs)]++
		if !g.player.IsAlive() {
			break
		}
	}

	span.SetAttributes(
		attribute.Int("decisions.idle", decisions[arena.DecisionIdle]),
		attribute.Int("decisions.flee", decisions[arena.DecisionFlee]),
		attribute.Int("decisions.fight", decisions[arena.DecisionFight]),
		attribute.Int("player.hp", g.player.GetHP()),
	)
}

// checkGameEnd updates the state after a move. Returns true if the game ended.
func (g *Game) checkGameEnd() bool {
	switch {
	case !g.player.IsAlive() || !g.player.OnGrid():
		g.state = StateDefeat
		g.status.SetStatus("You died. Game over.")
	case g.arena.AliveEnemyCount() == 0:
		g.state = StateVictory
		g.status.SetStatus("All enemies are defeated. You win!")
	default:
		return false
	}
	return true
}

// endGame records the final state.
func (g *Game) endGame(ctx context.Context) {
	_, span := g.tracer.Start(ctx, "game.end")
	span.SetAttributes(
		attribute.String("game.id", g.id),
		attribute.String("outcome", g.state.String()),
		attribute.Int("turns_taken", g.turns),
		attribute.Int("player.hp", g.player.GetHP()),
		attribute.Int("enemies_left", g.arena.AliveEnemyCount()),
	)
	span.End()

	g.logger.Info("game over", "game", g.id, "state", g.state.String(), "turns", g.turns)
}

// reachable returns the first enemy whose straight, unwrapped distance is
// exactly dist. Queries wrap around the edges but spells and arrows do not.
func (g *Game) reachable(from arena.Fighter, enemies []*arena.Enemy, dist int) *arena.Enemy {
	for _, e := range enemies {
		dx, dy := from.Distance(e)
		if (dx == dist && dy == 0) || (dx == 0 && dy == dist) {
			return e
		}
	}
	return nil
}

// nearestAliveEnemy returns the living on-grid enemy closest to from.
func (g *Game) nearestAliveEnemy(from arena.Fighter) *arena.Enemy {
	var best *arena.Enemy
	bestDist := 0
	for _, e := range g.arena.Enemies() {
		if !e.IsAlive() || !e.OnGrid() {
			continue
		}
		dx, dy := from.Distance(e)
		if best == nil || dx+dy < bestDist {
			best, bestDist = e, dx+dy
		}
	}
	return best
}

func hitMessage(attacker arena.Fighter, target *arena.Enemy, damage int) string {
	if !target.IsAlive() {
		return fmt.Sprintf("The %s makes %d damage: the enemy is dead.", attacker.GetName(), damage)
	}
	return fmt.Sprintf("The %s makes %d damage: %c has %d/%d hp left.",
		attacker.GetName(), damage, entity.RoleEnemy.Symbol(), target.GetHP(), target.GetMaxHP())
}
