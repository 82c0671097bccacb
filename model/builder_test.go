package model

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestBuilderDropsInvalidCells(t *testing.T) {
	t.Parallel()

	g := NewBuilder(3).
		Set(Coord{0, 0}).
		Set(Coord{2, -2}).
		Set(Coord{3, 0}).
		Set(Coord{0, -3}).
		Build()

	assert.Equal(t, 3, g.Bound())
	assert.Equal(t, []Coord{{0, 0}, {2, -2}}, g.Sorted())
}

func TestBuilderIsReusable(t *testing.T) {
	t.Parallel()

	b := NewBuilder(5).Set(Coord{1, 1})
	first := b.Build()
	b.Set(Coord{2, 2})
	second := b.Build()

	assert.Equal(t, 1, first.Population())
	assert.Equal(t, 2, second.Population())
}

func TestBuilderPatterns(t *testing.T) {
	t.Parallel()

	glider := NewBuilder(10).AddGlider(0, 0).Build()
	assert.Equal(t, []Coord{{0, 2}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}, glider.Sorted())

	blinker := NewBuilder(10).AddBlinker(-1, 4).Build()
	assert.Equal(t, []Coord{{-1, 4}, {0, 4}, {1, 4}}, blinker.Sorted())
}

func TestRandomize(t *testing.T) {
	t.Parallel()

	full := NewBuilder(4).Randomize(newTestRNG(), 1).Build()
	assert.Equal(t, 7*7, full.Population())

	none := NewBuilder(4).Randomize(newTestRNG(), 0).Build()
	assert.Zero(t, none.Population())

	same := NewBuilder(4).Randomize(newTestRNG(), 0.3).Build()
	again := NewBuilder(4).Randomize(newTestRNG(), 0.3).Build()
	assert.Equal(t, same.Sorted(), again.Sorted())
}

func TestWithRandomLife(t *testing.T) {
	t.Parallel()

	base := NewBuilder(5).Set(Coord{0, 0}).Build()
	next := WithRandomLife(base, newTestRNG(), 10)

	assert.Equal(t, 1, base.Population(), "input grid must not change")
	assert.True(t, next.IsAlive(Coord{0, 0}))
	assert.GreaterOrEqual(t, next.Population(), 2)
	assert.LessOrEqual(t, next.Population(), 11)
	for c := range next.AliveCells() {
		assert.True(t, next.IsValid(c), "injected %v outside window", c)
	}

	degenerate := WithRandomLife(NewGrid(0), newTestRNG(), 10)
	assert.Zero(t, degenerate.Population())
}

func TestInterestingPatterns(t *testing.T) {
	t.Parallel()

	g := InterestingPatterns(24, 0.1, newTestRNG())
	assert.Equal(t, 24, g.Bound())
	assert.Positive(t, g.Population())
	for c := range g.AliveCells() {
		assert.True(t, g.IsValid(c))
	}

	small := InterestingPatterns(2, 0, newTestRNG())
	assert.Zero(t, small.Population())
}
