package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	BoundingBoxSize      int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update folds one generation into the running statistics
func (s *Stats) Update(generation, population, boundingBox int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.BoundingBoxSize = boundingBox
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime returns the time elapsed since the stats were created
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}
