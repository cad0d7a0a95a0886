package world

import "fmt"

// Direction is one of the four orthogonal unit steps.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// AllDirections returns the four directions in a fixed order.
func AllDirections() []Direction {
	return []Direction{Left, Right, Up, Down}
}

// Delta returns the unit step (dx, dy). Up is +y.
func (d Direction) Delta() (int, int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection converts a name such as "left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}
