package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sheikhrachel/go-sparse-gol/model"
)

func TestApplyConwayRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		neighbors int
		alive     bool
		want      bool
	}{
		{0, true, false},
		{1, true, false},
		{2, true, true},
		{3, true, true},
		{4, true, false},
		{2, false, false},
		{3, false, true},
		{8, false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ApplyConwayRules(tt.neighbors, tt.alive),
			"neighbors=%d alive=%v", tt.neighbors, tt.alive)
	}
}

func TestConwayBlinkerOscillates(t *testing.T) {
	t.Parallel()

	rule := NewConway(nil)
	horizontal := gridOf(10, model.Coord{X: -1, Y: 0}, model.Coord{X: 0, Y: 0}, model.Coord{X: 1, Y: 0})

	vertical := rule.NextGeneration(horizontal)
	assertCells(t, []model.Coord{{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}}, vertical)

	back := rule.NextGeneration(vertical)
	assertCells(t, []model.Coord{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}}, back)
}

func TestConwayBlockIsStill(t *testing.T) {
	t.Parallel()

	block := gridOf(10, model.Coord{X: 0, Y: 0}, model.Coord{X: 1, Y: 0}, model.Coord{X: 0, Y: 1}, model.Coord{X: 1, Y: 1})
	next := NewConway(NewCountPool()).NextGeneration(block)
	assert.Equal(t, block.Sorted(), next.Sorted())
}

func TestConwayRespectsBound(t *testing.T) {
	t.Parallel()

	const bound = 5
	grid := gridOf(bound,
		model.Coord{X: bound - 1, Y: -1},
		model.Coord{X: bound - 1, Y: 0},
		model.Coord{X: bound - 1, Y: 1},
	)
	next := NewConway(nil).NextGeneration(grid)
	assertCells(t, []model.Coord{{X: bound - 2, Y: 0}, {X: bound - 1, Y: 0}}, next)
}
