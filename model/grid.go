package model

import (
	"crypto/md5"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// DefaultBound is the bound given to a grid imported from an empty matrix
const DefaultBound = 1024

// Grid is one generation: the set of alive coordinates plus the universe bound.
// Coordinates are valid when both axes lie strictly inside (-bound, bound).
//
// A Grid is never mutated after construction. Advancing the simulation always
// produces a new Grid.
type Grid struct {
	alive map[Coord]struct{}
	bound int
}

// NewGrid creates an empty grid with the given bound. A non-positive bound is
// accepted and yields a grid in which no coordinate is valid.
func NewGrid(bound int) *Grid {
	return &Grid{
		alive: make(map[Coord]struct{}),
		bound: bound,
	}
}

// FromAliveCells builds a grid around a precomputed set of alive coordinates.
// The set is not filtered against the bound, and the grid takes ownership of it.
func FromAliveCells(alive map[Coord]struct{}, bound int) *Grid {
	if alive == nil {
		alive = make(map[Coord]struct{})
	}
	return &Grid{alive: alive, bound: bound}
}

// FromMatrix imports a dense matrix of cell states. Row i, column j maps to
// Coord{X: i, Y: j}. The bound is the larger of the row count and the length of
// the first row; an empty matrix gives an empty grid with DefaultBound.
//
// Rows are not checked for equal length and imported cells are not checked
// against the bound.
func FromMatrix(rows [][]CellState) *Grid {
	if len(rows) == 0 {
		return NewGrid(DefaultBound)
	}

	alive := make(map[Coord]struct{})
	for i, row := range rows {
		for j, cell := range row {
			if cell.IsAlive() {
				alive[Coord{X: i, Y: j}] = struct{}{}
			}
		}
	}
	return FromAliveCells(alive, max(len(rows), len(rows[0])))
}

// Bound returns the half-width of the validity window
func (g *Grid) Bound() int {
	return g.bound
}

// IsValid reports whether c lies strictly inside the validity window
func (g *Grid) IsValid(c Coord) bool {
	return -g.bound < c.X && c.X < g.bound &&
		-g.bound < c.Y && c.Y < g.bound
}

// IsAlive reports whether c is in the alive set. No bound check is done.
func (g *Grid) IsAlive(c Coord) bool {
	_, ok := g.alive[c]
	return ok
}

// AliveCells enumerates the alive coordinates in no particular order
func (g *Grid) AliveCells() iter.Seq[Coord] {
	return maps.Keys(g.alive)
}

// Sorted returns the alive coordinates ordered by X, then Y
func (g *Grid) Sorted() []Coord {
	return slices.SortedFunc(g.AliveCells(), compareCoords)
}

// Population returns the number of alive cells
func (g *Grid) Population() int {
	return len(g.alive)
}

// BoundingBox returns the smallest rectangle holding every alive cell.
// ok is false for an empty grid.
func (g *Grid) BoundingBox() (lo, hi Coord, ok bool) {
	for c := range g.alive {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return
}

// GetBoundingBoxSize returns the area of the active region
func (g *Grid) GetBoundingBoxSize() int {
	lo, hi, ok := g.BoundingBox()
	if !ok {
		return 0
	}
	return (hi.X - lo.X + 1) * (hi.Y - lo.Y + 1)
}

// Hash returns an MD5 digest of the bound and the sorted alive set
func (g *Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%d|", g.bound)
	for _, c := range g.Sorted() {
		fmt.Fprintf(h, "%d,%d;", c.X, c.Y)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
