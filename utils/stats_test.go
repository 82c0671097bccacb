package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatsUpdate(t *testing.T) {
	t.Parallel()

	s := NewStats()
	s.Update(1, 100, 64, 100*time.Millisecond)
	assert.Equal(t, 1, s.TotalGenerations)
	assert.Equal(t, 100, s.ActiveCells)
	assert.Equal(t, 64, s.BoundingBoxSize)
	assert.InDelta(t, 10.0, s.GenerationsPerSecond, 1e-9)
	assert.InDelta(t, 100.0, s.AveragePopulation, 1e-9)

	s.Update(2, 200, 81, 0)
	assert.InDelta(t, 10.0, s.GenerationsPerSecond, 1e-9, "zero duration keeps the last rate")
	assert.InDelta(t, 110.0, s.AveragePopulation, 1e-9)
}
