package model

import (
	"cmp"
	"fmt"
)

// Coord addresses a cell in the universe. Only coordinates inside a grid's
// validity window are meaningful to that grid.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by (dx, dy)
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// compareCoords orders by X, then Y
func compareCoords(a, b Coord) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}
