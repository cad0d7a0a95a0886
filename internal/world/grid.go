// Package world provides the toroidal occupancy grid the game is played on.
package world

import (
	"errors"
	"fmt"
)

const (
	// Default grid dimensions
	DefaultWidth  = 60
	DefaultHeight = 22
)

// EntityID identifies an entity placed on the grid. The grid never owns the
// entity itself, it only records which ID sits in which cell.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID and an empty
// cell holds it.
const NilEntity EntityID = 0

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrOccupied is returned when placing onto a cell held by another entity.
	ErrOccupied = errors.New("cell already occupied")
)

// Grid is a fixed-size wrapped map of occupancy cells.
// Invariant: a cell holds at most one entity ID.
type Grid struct {
	width  int
	height int
	cells  []EntityID
}

// NewGrid creates an empty grid. Both dimensions must be positive.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]EntityID, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is a valid cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Wrap folds any coordinate pair back onto the grid. Moving past one edge
// reappears on the opposite edge.
func (g *Grid) Wrap(x, y int) (int, int) {
	x %= g.width
	if x < 0 {
		x += g.width
	}
	y %= g.height
	if y < 0 {
		y += g.height
	}
	return x, y
}

// IsOccupied reports whether the cell holds an entity.
// Panics if (x, y) is outside the grid; callers wrap first.
func (g *Grid) IsOccupied(x, y int) bool {
	return g.OccupantAt(x, y) != NilEntity
}

// OccupantAt returns the ID recorded at (x, y), or NilEntity.
// Panics if (x, y) is outside the grid.
func (g *Grid) OccupantAt(x, y int) EntityID {
	return g.cells[g.index(x, y)]
}

// Place records id as the occupant of (x, y). Placing an ID onto the cell it
// already holds is a no-op.
func (g *Grid) Place(id EntityID, x, y int) error {
	if id == NilEntity {
		return fmt.Errorf("place nil entity at (%d,%d)", x, y)
	}
	if !g.InBounds(x, y) {
		return fmt.Errorf("place entity %d at (%d,%d): %w", id, x, y, ErrOutOfBounds)
	}
	i := y*g.width + x
	if cur := g.cells[i]; cur != NilEntity && cur != id {
		return fmt.Errorf("place entity %d at (%d,%d) held by %d: %w", id, x, y, cur, ErrOccupied)
	}
	g.cells[i] = id
	return nil
}

// Remove clears (x, y) if it holds id. Stale removals are ignored so a cell
// taken over by someone else is never wiped.
func (g *Grid) Remove(id EntityID, x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	i := y*g.width + x
	if g.cells[i] == id {
		g.cells[i] = NilEntity
	}
}

// Occupied returns the number of occupied cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, id := range g.cells {
		if id != NilEntity {
			n++
		}
	}
	return n
}

// Free returns the number of empty cells.
func (g *Grid) Free() int {
	return len(g.cells) - g.Occupied()
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("world: cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return y*g.width + x
}
