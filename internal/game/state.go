// Package game provides the driver loop: setup, input, turn order and end conditions.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the normal turn loop.
	StatePlaying State = iota
	// StateVictory means no living enemy is left on the grid.
	StateVictory
	// StateDefeat means the player has died.
	StateDefeat
	// StateQuit means the user left the game.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Over reports whether the game has ended.
func (s State) Over() bool {
	return s != StatePlaying
}
