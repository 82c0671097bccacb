package rules

import "github.com/sheikhrachel/go-sparse-gol/model"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Conway is textbook Life on the sparse grid: neighbors exclude the cell itself
type Conway struct {
	pool *CountPool
}

// NewConway creates the Conway rule. pool may be nil.
func NewConway(pool *CountPool) *Conway {
	return &Conway{pool: pool}
}

func (c *Conway) Name() string {
	return ConwayName
}

// NextGeneration computes the successor of grid. A cell with no alive cell in
// its 3x3 block is never touched, which is fine since it cannot be born.
func (c *Conway) NextGeneration(grid *model.Grid) *model.Grid {
	counts := getCounts(c.pool, 9*grid.Population())
	defer putCounts(c.pool, counts)

	countBlocks(grid, counts)

	next := make(map[model.Coord]struct{})
	for coord, count := range counts {
		if !grid.IsValid(coord) {
			continue
		}
		alive := grid.IsAlive(coord)
		neighbors := count
		if alive {
			neighbors--
		}
		if ApplyConwayRules(neighbors, alive) {
			next[coord] = struct{}{}
		}
	}

	return model.FromAliveCells(next, grid.Bound())
}
