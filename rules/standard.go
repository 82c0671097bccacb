package rules

import "github.com/sheikhrachel/go-sparse-gol/model"

// Standard is the default rule. It counts over the full 3x3 block, so a live
// cell's own presence is part of its total:
//
//   - count 2: stays alive only if it was already alive
//   - count 3: alive, whether or not it was alive before
//   - anything else: dead
//
// For a live cell with k live neighbors the count is k+1, so it survives with
// k == 1 or k == 2 and dies with k == 3. A dead cell is born with k == 3.
type Standard struct {
	pool *CountPool
}

// NewStandard creates the standard rule. pool may be nil.
func NewStandard(pool *CountPool) *Standard {
	return &Standard{pool: pool}
}

func (s *Standard) Name() string {
	return StandardName
}

// NextGeneration computes the successor of grid. Touched coordinates outside
// the validity window are dropped regardless of their count.
func (s *Standard) NextGeneration(grid *model.Grid) *model.Grid {
	counts := getCounts(s.pool, 9*grid.Population())
	defer putCounts(s.pool, counts)

	countBlocks(grid, counts)

	next := make(map[model.Coord]struct{})
	for c, count := range counts {
		if !grid.IsValid(c) {
			continue
		}
		switch count {
		case 2:
			if grid.IsAlive(c) {
				next[c] = struct{}{}
			}
		case 3:
			next[c] = struct{}{}
		}
	}

	return model.FromAliveCells(next, grid.Bound())
}
