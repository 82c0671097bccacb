package model

import (
	"maps"
	"math/rand/v2"
)

// Builder accumulates alive cells for a new grid
type Builder struct {
	bound int
	alive map[Coord]struct{}
}

// NewBuilder creates a builder for a grid with the given bound
func NewBuilder(bound int) *Builder {
	return &Builder{bound: bound, alive: make(map[Coord]struct{})}
}

// Set marks c alive
func (b *Builder) Set(c Coord) *Builder {
	b.alive[c] = struct{}{}
	return b
}

// AddGlider adds a glider pattern with its top-left corner at (startX, startY)
func (b *Builder) AddGlider(startX, startY int) *Builder {
	pattern := [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}

	for y, row := range pattern {
		for x, cell := range row {
			if cell {
				b.Set(Coord{X: startX + x, Y: startY + y})
			}
		}
	}
	return b
}

// AddBlinker adds a horizontal blinker starting at (startX, startY)
func (b *Builder) AddBlinker(startX, startY int) *Builder {
	for dx := range 3 {
		b.Set(Coord{X: startX + dx, Y: startY})
	}
	return b
}

// Randomize marks each valid coordinate alive with the given probability
func (b *Builder) Randomize(rng *rand.Rand, density float64) *Builder {
	if density <= 0 {
		return b
	}
	for x := -b.bound + 1; x < b.bound; x++ {
		for y := -b.bound + 1; y < b.bound; y++ {
			if rng.Float64() < density {
				b.Set(Coord{X: x, Y: y})
			}
		}
	}
	return b
}

// Build returns a grid holding every accumulated cell that lies inside the
// validity window. The builder can keep being used afterwards.
func (b *Builder) Build() *Grid {
	g := NewGrid(b.bound)
	for c := range b.alive {
		if g.IsValid(c) {
			g.alive[c] = struct{}{}
		}
	}
	return g
}

// WithRandomLife returns a copy of g with up to count random valid cells added
func WithRandomLife(g *Grid, rng *rand.Rand, count int) *Grid {
	alive := maps.Clone(g.alive)
	if g.bound <= 0 {
		return FromAliveCells(alive, g.bound)
	}

	span := 2*g.bound - 1
	for range count {
		c := Coord{
			X: rng.IntN(span) - g.bound + 1,
			Y: rng.IntN(span) - g.bound + 1,
		}
		alive[c] = struct{}{}
	}
	return FromAliveCells(alive, g.bound)
}

// InterestingPatterns seeds a grid with gliders and blinkers scaled to the
// window, then sprinkles random life at the given density
func InterestingPatterns(bound int, density float64, rng *rand.Rand) *Grid {
	b := NewBuilder(bound)

	if bound >= 6 {
		b.AddGlider(-bound+2, -bound+2)
		if bound >= 10 {
			b.AddGlider(bound-5, -bound+2)
		}

		b.AddBlinker(-bound/2, -bound/2)
		if bound >= 15 {
			b.AddBlinker(bound/2, bound/2)
		}
	}

	return b.Randomize(rng, density).Build()
}
