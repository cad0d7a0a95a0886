package arena

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/gridquest/internal/combat"
	"github.com/samdwyer/gridquest/internal/world"
)

func TestWizardRemoveScenario(t *testing.T) {
	a, _ := newTestArena(t, 60, 22, 1)
	w, err := a.SpawnWizard(0, 0, 20)
	require.NoError(t, err)
	e, err := a.SpawnEnemy(0, 1, 20)
	require.NoError(t, err)

	result := w.CastSpell("remove", e)
	assert.True(t, result.Cast)
	assert.False(t, a.Grid().IsOccupied(0, 1))
	assert.False(t, e.OnGrid())
	assert.Equal(t, 20, e.HP, "remove bypasses HP")
	assert.Equal(t, 0, a.AliveEnemyCount())
	checkOccupancy(t, a)
}

func TestWizardRemoveOutOfRange(t *testing.T) {
	offsets := [][2]int{{1, 1}, {0, 2}, {3, 0}}
	for _, off := range offsets {
		a, _ := newTestArena(t, 20, 20, 1)
		w, err := a.SpawnWizard(5, 5, 20)
		require.NoError(t, err)
		e, err := a.SpawnEnemy(5+off[0], 5+off[1], 20)
		require.NoError(t, err)

		result := w.CastSpell("remove", e)
		assert.False(t, result.Cast, "offset %v", off)
		assert.True(t, e.OnGrid())
	}
}

func TestWizardRemoveDeadBody(t *testing.T) {
	a, _ := newTestArena(t, 10, 10, 1)
	w, err := a.SpawnWizard(5, 5, 20)
	require.NoError(t, err)
	e, err := a.SpawnEnemy(4, 5, 20)
	require.NoError(t, err)
	e.Harm(20)

	assert.True(t, w.CastSpell("remove", e).Cast)
	_, ok := a.GlyphAt(4, 5)
	assert.False(t, ok)
}

func TestWizardHPStealer(t *testing.T) {
	tests := []struct {
		name       string
		wizardHP   int
		offset     [2]int
		wantCast   bool
		wantEnemy  int
		wantWizard int
	}{
		{"three east", 15, [2]int{3, 0}, true, 17, 18},
		{"three north", 15, [2]int{0, 3}, true, 17, 18},
		{"full hp is clamped", 20, [2]int{3, 0}, true, 17, 20},
		{"partial heal", 19, [2]int{0, 3}, true, 17, 20},
		{"two away", 15, [2]int{2, 0}, false, 20, 15},
		{"four away", 15, [2]int{0, 4}, false, 20, 15},
		{"diagonal", 15, [2]int{3, 3}, false, 20, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, rec := newTestArena(t, 20, 20, 1)
			w, err := a.SpawnWizard(5, 5, 20)
			require.NoError(t, err)
			w.HP = tt.wizardHP
			e, err := a.SpawnEnemy(5+tt.offset[0], 5+tt.offset[1], 20)
			require.NoError(t, err)

			result := w.CastSpell("hp-stealer", e)
			assert.Equal(t, tt.wantCast, result.Cast)
			assert.Equal(t, tt.wantEnemy, e.HP)
			assert.Equal(t, tt.wantWizard, w.HP)
			assert.LessOrEqual(t, w.HP, w.MaxHP)
			if tt.wantCast {
				assert.Equal(t, 3, result.Damage)
				assert.Equal(t, tt.wantWizard-tt.wizardHP, result.Healed)
				assert.Equal(t, result.Message, rec.last())
			} else {
				assert.Empty(t, rec.msgs)
			}
		})
	}
}

func TestWizardUnknownSpell(t *testing.T) {
	a, rec := newTestArena(t, 10, 10, 1)
	w, err := a.SpawnWizard(5, 5, 20)
	require.NoError(t, err)
	e, err := a.SpawnEnemy(5, 6, 20)
	require.NoError(t, err)

	result := w.CastSpell("fireball", e)
	assert.Nil(t, result.Spell)
	assert.False(t, result.Cast)
	assert.Equal(t, "The wizard does not know the spell 'fireball' yet.", rec.last())
	assert.Equal(t, 20, e.HP)
	assert.True(t, e.OnGrid())
}

func TestArcherRangeAttack(t *testing.T) {
	tests := []struct {
		offset [2]int
		hit    bool
	}{
		{[2]int{1, 0}, true},
		{[2]int{5, 0}, true},
		{[2]int{0, 5}, true},
		{[2]int{0, 3}, true},
		{[2]int{6, 0}, false},
		{[2]int{0, 6}, false},
		{[2]int{1, 1}, false},
		{[2]int{5, 1}, false},
	}

	for _, tt := range tests {
		a, _ := newTestArena(t, 30, 30, 1)
		ar, err := a.SpawnArcher(10, 10, 20)
		require.NoError(t, err)
		e, err := a.SpawnEnemy(10+tt.offset[0], 10+tt.offset[1], 20)
		require.NoError(t, err)

		result := ar.RangeAttack(e)
		if tt.hit {
			assert.Equal(t, combat.OutcomeHit, result.Outcome, "offset %v", tt.offset)
			assert.Equal(t, ArcherDamage, result.Damage)
			assert.Equal(t, 15, e.HP)
		} else {
			assert.Equal(t, combat.OutcomeOutOfRange, result.Outcome, "offset %v", tt.offset)
			assert.Equal(t, 20, e.HP)
		}
	}
}

func TestArcherShootsUntilDead(t *testing.T) {
	a, _ := newTestArena(t, 30, 30, 1)
	ar, err := a.SpawnArcher(10, 10, 20)
	require.NoError(t, err)
	e, err := a.SpawnEnemy(10, 14, 12)
	require.NoError(t, err)

	assert.False(t, ar.RangeAttack(e).Killed)
	assert.False(t, ar.RangeAttack(e).Killed)
	assert.True(t, ar.RangeAttack(e).Killed)
	assert.Equal(t, 0, e.HP)
}

func TestArcherSelfTarget(t *testing.T) {
	a, _ := newTestArena(t, 10, 10, 1)
	ar, err := a.SpawnArcher(5, 5, 20)
	require.NoError(t, err)

	// Distance (0,0) is within range.
	assert.Equal(t, combat.OutcomeHit, ar.RangeAttack(ar).Outcome)
	assert.Equal(t, 15, ar.HP)
}

func TestEnemyActDeadDoesNothing(t *testing.T) {
	a, _ := newTestArena(t, 10, 10, 1)
	p, err := a.SpawnPlayer(5, 5, 30)
	require.NoError(t, err)
	e, err := a.SpawnEnemy(5, 6, 20)
	require.NoError(t, err)
	e.Harm(20)

	for i := 0; i < 20; i++ {
		assert.Equal(t, DecisionNone, e.Act(p, world.AllDirections()))
	}
	assert.Equal(t, 30, p.HP)
	x, y := e.Position()
	assert.Equal(t, [2]int{5, 6}, [2]int{x, y})

	other, err := a.SpawnEnemy(2, 2, 20)
	require.NoError(t, err)
	other.Remove()
	assert.Equal(t, DecisionNone, other.Act(p, world.AllDirections()))
}

func TestEnemyActNeverFightsFromAfar(t *testing.T) {
	a, _ := newTestArena(t, 20, 20, 11)
	p, err := a.SpawnPlayer(0, 0, 30)
	require.NoError(t, err)
	e, err := a.SpawnEnemy(10, 10, 20)
	require.NoError(t, err)

	counts := map[Decision]int{}
	for i := 0; i < 200; i++ {
		counts[e.Act(p, world.AllDirections())]++
		checkOccupancy(t, a)
	}
	assert.Zero(t, counts[DecisionFight])
	assert.Zero(t, counts[DecisionNone])
	assert.Positive(t, counts[DecisionIdle])
	assert.Positive(t, counts[DecisionFlee])
	assert.Equal(t, 30, p.HP)
}

func TestEnemyActFightsWhenAdjacent(t *testing.T) {
	a, _ := newTestArena(t, 20, 20, 13)
	p, err := a.SpawnPlayer(5, 5, 1000)
	require.NoError(t, err)
	e, err := a.SpawnEnemy(6, 5, 20)
	require.NoError(t, err)

	// Walls on every side except the player keep the enemy in place.
	for _, cell := range [][2]int{{7, 5}, {6, 6}, {6, 4}} {
		_, err := a.SpawnWizard(cell[0], cell[1], 20)
		require.NoError(t, err)
	}

	counts := map[Decision]int{}
	for i := 0; i < 300; i++ {
		counts[e.Act(p, world.AllDirections())]++
	}
	assert.Positive(t, counts[DecisionFight])
	assert.Zero(t, counts[DecisionFlee], "every direction is blocked")
	assert.Less(t, p.HP, 1000)
	x, y := e.Position()
	assert.Equal(t, [2]int{6, 5}, [2]int{x, y})
}

func TestEnemyFleeIsBoundedOnFullGrid(t *testing.T) {
	a, _ := newTestArena(t, 3, 1, 17)
	p, err := a.SpawnPlayer(0, 0, 1000)
	require.NoError(t, err)
	e, err := a.SpawnEnemy(1, 0, 20)
	require.NoError(t, err)
	_, err = a.SpawnWizard(2, 0, 20)
	require.NoError(t, err)
	require.Zero(t, a.Grid().Free())

	for i := 0; i < 100; i++ {
		d := e.Act(p, world.AllDirections())
		assert.Contains(t, []Decision{DecisionIdle, DecisionFight}, d)
	}
	checkOccupancy(t, a)
}

func TestEnemyFleeMovesOneStep(t *testing.T) {
	a := New(Options{Width: 20, Height: 20, Rand: rand.New(rand.NewSource(21)), FleeRetries: 4})
	p, err := a.SpawnPlayer(0, 0, 30)
	require.NoError(t, err)
	e, err := a.SpawnEnemy(10, 10, 20)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		x0, y0 := e.Position()
		d := e.Act(p, []world.Direction{world.Right})
		x1, y1 := e.Position()
		switch d {
		case DecisionFlee:
			assert.Equal(t, [2]int{(x0 + 1) % 20, y0}, [2]int{x1, y1})
		default:
			assert.Equal(t, [2]int{x0, y0}, [2]int{x1, y1})
		}
	}
}

func TestEnemyActWithoutDirectionsIdles(t *testing.T) {
	a, _ := newTestArena(t, 10, 10, 1)
	p, err := a.SpawnPlayer(0, 0, 30)
	require.NoError(t, err)
	e, err := a.SpawnEnemy(5, 5, 20)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		assert.Equal(t, DecisionIdle, e.Act(p, nil))
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "none", DecisionNone.String())
	assert.Equal(t, "idle", DecisionIdle.String())
	assert.Equal(t, "flee", DecisionFlee.String())
	assert.Equal(t, "fight", DecisionFight.String())
	assert.Equal(t, "unknown", Decision(42).String())
}
