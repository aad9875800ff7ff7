package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/life-editor/model"
	"github.com/sheikhrachel/life-editor/utils"
)

// Used by headless runs when the config would start from an empty board.
const headlessDensity = 0.15

// Reasons a headless run stops.
const (
	reasonExtinction  = "extinction"
	reasonStagnation  = "stagnation detected"
	reasonLimit       = "generation limit"
	reasonInterrupted = "interrupted"
)

// runResult describes how one headless board evolved.
type runResult struct {
	index       int
	seed        int64
	reason      string
	generations int
	population  int
	populations []float64
	stats       *utils.Stats
	engine      *model.Engine
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// runHeadless runs flags.runs boards concurrently until each stops, then
// prints a summary per board.
func runHeadless(cmd *cobra.Command, config utils.Config, flags cliFlags) error {
	if flags.runs < 1 {
		return errors.Errorf("[runHeadless] runs must be at least 1, got %d", flags.runs)
	}
	if !config.Patterns && config.RandomDensity == 0 {
		config.RandomDensity = headlessDensity
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	displayRunInfo(out, config, flags.runs)

	results, err := runEnsemble(ctx, config, flags.runs)
	if err != nil {
		return err
	}
	for _, result := range results {
		if err := displayRunSummary(out, result, flags.printGrid); err != nil {
			return err
		}
	}
	return nil
}

// runEnsemble runs n independent boards, one goroutine each. Board i is
// seeded with config.Seed+i.
func runEnsemble(ctx context.Context, config utils.Config, n int) ([]runResult, error) {
	results := make([]runResult, n)
	eg, ctx := errgroup.WithContext(ctx)
	for i := range n {
		eg.Go(func() error {
			seed := config.Seed + int64(i)
			engine, err := newSeededEngine(config, seed)
			if err != nil {
				return errors.Wrapf(err, "[runEnsemble] run %d", i+1)
			}
			results[i] = simulate(ctx, engine, config)
			results[i].index = i + 1
			results[i].seed = seed
			log.Printf("run %d stopped after %d generations: %s", i+1, results[i].generations, results[i].reason)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// simulate ticks engine until its board dies out, stagnates, reaches
// config.MaxGenerations or ctx is cancelled.
func simulate(ctx context.Context, engine *model.Engine, config utils.Config) runResult {
	var (
		history model.History
		result  = runResult{stats: utils.NewStats(), engine: engine}
	)

	for {
		cells := engine.Cells()
		population := engine.Population()
		result.populations = append(result.populations, float64(population))
		result.population = population
		result.generations = engine.Generation()

		stagnant := history.IsStagnant(cells)
		history.Record(cells)

		switch {
		case ctx.Err() != nil:
			result.reason = reasonInterrupted
		case population == 0:
			result.reason = reasonExtinction
		case stagnant && config.StopOnStagnation:
			result.reason = reasonStagnation
		case config.MaxGenerations > 0 && engine.Generation() >= config.MaxGenerations:
			result.reason = reasonLimit
		}
		if result.reason != "" {
			return result
		}

		start := time.Now()
		engine.Tick()
		result.stats.Update(engine.Generation(), engine.LiveCount(), time.Since(start))
	}
}

// displayRunInfo shows what is about to run
func displayRunInfo(w io.Writer, config utils.Config, runs int) {
	fmt.Fprintf(w, "Grid: %dx%d | Runs: %d | Seed: %d | Density: %.2f | Patterns: %v\n",
		config.Width, config.Height, runs, config.Seed, config.RandomDensity, config.Patterns)
	if config.MaxGenerations > 0 {
		fmt.Fprintf(w, "Generation limit: %d | Stop on stagnation: %v\n", config.MaxGenerations, config.StopOnStagnation)
	} else {
		fmt.Fprintf(w, "Generation limit: none | Stop on stagnation: %v\n", config.StopOnStagnation)
	}
	fmt.Fprintln(w)
}

// displayRunSummary shows the outcome of one run, its population chart and
// optionally its final board
func displayRunSummary(w io.Writer, result runResult, printGrid bool) error {
	cells := result.engine.Cells()
	density := float64(result.population) / float64(cells.Width()*cells.Height()) * 100

	fmt.Fprintf(w, "Run %d (seed %d): %s after %d generations\n",
		result.index, result.seed, result.reason, result.generations)
	fmt.Fprintf(w, "Living: %d | Density: %.1f%% | Avg Pop: %.1f | Performance: %.1f gen/sec | Runtime: %.1fs\n",
		result.population, density, result.stats.AveragePopulation,
		result.stats.GenerationsPerSecond, result.stats.Runtime().Seconds())

	if len(result.populations) > 1 {
		fmt.Fprintln(w, populationChart(result))
	}
	if printGrid {
		renderer := &model.TerminalRenderer{Out: w}
		if err := renderer.Display(cells); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)
	return nil
}

func populationChart(result runResult) string {
	return asciigraph.Plot(result.populations,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("population, run %d", result.index)),
	)
}
