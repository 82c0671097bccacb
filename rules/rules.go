package rules

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-sparse-gol/model"
)

const (
	StandardName = "standard"
	ConwayName   = "conway"
)

// ErrUnknownRule is returned by ByName for an unregistered rule name
var ErrUnknownRule = errors.New("unknown rule")

// Rule computes the successor of a generation. Implementations never modify
// the input grid and always return a grid with the same bound.
type Rule interface {
	Name() string
	NextGeneration(grid *model.Grid) *model.Grid
}

// Factory constructs a Rule that draws its scratch maps from pool (may be nil)
type Factory func(pool *CountPool) Rule

var registry = map[string]Factory{
	StandardName: func(pool *CountPool) Rule { return NewStandard(pool) },
	ConwayName:   func(pool *CountPool) Rule { return NewConway(pool) },
}

// ByName looks up a registered rule
func ByName(name string, pool *CountPool) (Rule, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownRule, "[ByName] %q (known: %v)", name, Names())
	}
	return factory(pool), nil
}

// Names lists the registered rule names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// countBlocks tallies, for every coordinate touched, how many alive cells have
// it inside their 3x3 block. An alive cell contributes to its own count.
func countBlocks(grid *model.Grid, counts map[model.Coord]int) {
	for c := range grid.AliveCells() {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				counts[c.Add(dx, dy)]++
			}
		}
	}
}
