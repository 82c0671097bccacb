package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-sparse-gol/model"
	"github.com/sheikhrachel/go-sparse-gol/rules"
	"github.com/sheikhrachel/go-sparse-gol/utils"
)

const refreshInterval = 200

// game owns the current generation and everything needed to advance it
type game struct {
	config  utils.Config
	rule    rules.Rule
	rng     *rand.Rand
	grid    *model.Grid
	history model.History
	stats   *utils.Stats
}

// snapshot is what the stepping loop hands to the status reporter
type snapshot struct {
	generation     int
	lastRestartGen int
	grid           *model.Grid
	status         string
	restartReason  string
}

// newGame sets up the initial game state
func newGame(config utils.Config) (*game, error) {
	var pool *rules.CountPool
	if config.UseMemoryPool {
		pool = rules.NewCountPool()
	}

	rule, err := rules.ByName(config.Rule, pool)
	if err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &game{
		config: config,
		rule:   rule,
		rng:    rand.New(rand.NewPCG(seed, seed)),
		stats:  utils.NewStats(),
	}
	g.grid = g.seedGrid()
	return g, nil
}

// seedGrid builds a fresh starting generation
func (g *game) seedGrid() *model.Grid {
	return model.InterestingPatterns(g.config.Bound, g.config.RandomDensity, g.rng)
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, g *game) {
	fmt.Fprintf(out, "Rule: %s | Memory Pool: %v\n", g.rule.Name(), config.UseMemoryPool)
	fmt.Fprintf(out, "Universe: (-%d, %d) on both axes | Initial living cells: %d\n",
		config.Bound, config.Bound, g.grid.Population())
	fmt.Fprintln(out, "Press Ctrl+C to exit gracefully")
	fmt.Fprintln(out)
}

// gameStatus describes a generation for the status line
func gameStatus(livingCells, generation int, isStagnant bool) string {
	switch {
	case livingCells == 0:
		return "Extinct"
	case isStagnant:
		return fmt.Sprintf("Stagnant (%d)", generation)
	default:
		return "Active"
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, s snapshot, stats *utils.Stats) {
	if s.restartReason != "" {
		fmt.Fprintf(out, "🔄 Restarted due to %s\n", s.restartReason)
	}

	fmt.Fprintf(out, "Gen: %d | Living: %d | Bounding box: %d cells | Status: %s\n",
		s.generation, stats.ActiveCells, stats.BoundingBoxSize, s.status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())

	// Show time since last restart
	if s.generation > s.lastRestartGen {
		fmt.Fprintf(out, "Generations since restart: %d\n", s.generation-s.lastRestartGen)
	}
	fmt.Fprintln(out)
}

// displayFinalStats prints the summary shown on exit
func displayFinalStats(out io.Writer, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%refreshInterval == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// run steps the simulation and reports each generation until the generation
// limit is reached or ctx is cancelled
func (g *game) run(ctx context.Context, out io.Writer) error {
	snapshots := make(chan snapshot, 1)
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(snapshots)
		return g.stepLoop(ctx, snapshots)
	})

	eg.Go(func() error {
		lastFrameTime := time.Now()
		for s := range snapshots {
			frameStart := time.Now()
			g.stats.Update(s.generation, s.grid.Population(), s.grid.GetBoundingBoxSize(), frameStart.Sub(lastFrameTime))
			lastFrameTime = frameStart
			displayGameStatus(out, s, g.stats)
		}
		return nil
	})

	return eg.Wait()
}

// stepLoop advances generations and publishes a snapshot of each one
func (g *game) stepLoop(ctx context.Context, snapshots chan<- snapshot) error {
	var tick <-chan time.Time
	if g.config.FrameRate > 0 {
		ticker := time.NewTicker(g.config.FrameRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		restartReason  = ""
	)

	for {
		livingCells := g.grid.Population()
		isStagnant := g.history.IsStagnant(g.grid)
		g.history.Record(g.grid)

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		s := snapshot{
			generation:     generation,
			lastRestartGen: lastRestartGen,
			grid:           g.grid,
			status:         gameStatus(livingCells, generation, isStagnant),
			restartReason:  restartReason,
		}
		restartReason = ""

		select {
		case <-ctx.Done():
			return ctx.Err()
		case snapshots <- s:
		}

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			return nil
		}

		shouldRestart, reason := checkRestartConditions(livingCells, stagnantCount, generation, g.config)
		if shouldRestart && g.config.AutoRestart {
			g.grid = g.seedGrid()
			g.history.Reset()
			lastRestartGen = generation
			stagnantCount = 0
			restartReason = reason
		} else if stagnantCount >= 2 && stagnantCount < g.config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			g.grid = model.WithRandomLife(g.grid, g.rng, g.config.InjectionCount)
		}

		g.grid = g.rule.NextGeneration(g.grid)
		generation++

		if tick == nil {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
		}
	}
}
