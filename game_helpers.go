package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

// reportBuffer is how many generations the simulation may run ahead of the writer
const reportBuffer = 64

// report is the output line for one generation
type report struct {
	generation int
	population int
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (model.CellSet, *model.History, *utils.Stats, error) {
	gen, err := model.Pattern(config.Pattern)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "[initializeGame] failed to seed generation")
	}

	history := model.NewHistory(config.HistorySize)
	history.Record(gen)

	return gen, history, utils.NewStats(), nil
}

// runSimulation advances the seeded generation config.Iterations times and
// writes "<generation> <population>" per step to out. A cancelled ctx ends
// the run early without an error.
func runSimulation(ctx context.Context, config utils.Config, out io.Writer, logger *slog.Logger) error {
	gen, history, stats, err := initializeGame(config)
	if err != nil {
		return err
	}

	logger.Info("starting simulation",
		"pattern", config.Pattern,
		"iterations", config.Iterations,
		"population", gen.Len())

	var (
		reports   = make(chan report, reportBuffer)
		eg, egCtx = errgroup.WithContext(ctx)
	)

	eg.Go(func() error {
		defer close(reports)
		return simulate(egCtx, config, gen, history, stats, logger, reports)
	})
	eg.Go(func() error {
		return emitReports(out, reports)
	})

	err = eg.Wait()
	if err != nil && ctx.Err() != nil && errors.Is(err, context.Canceled) {
		logger.Info("simulation interrupted", "generations", stats.TotalGenerations)
		err = nil
	}
	if err != nil {
		return err
	}

	logger.Info("simulation finished",
		"generations", stats.TotalGenerations,
		"peak_population", stats.PeakPopulation,
		"avg_population", fmt.Sprintf("%.1f", stats.AveragePopulation),
		"elapsed", stats.Elapsed().Round(time.Millisecond))
	return nil
}

// simulate is the generation loop. Each step replaces the current generation
// with a freshly computed one.
func simulate(
	ctx context.Context,
	config utils.Config,
	gen model.CellSet,
	history *model.History,
	stats *utils.Stats,
	logger *slog.Logger,
	reports chan<- report,
) error {
	trackHistory := config.StopOnStagnation || logger.Enabled(ctx, slog.LevelDebug)

	for i := 1; i <= config.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		gen = model.NextGeneration(gen)
		population := gen.Len()
		stats.Update(i, population, time.Since(start))

		select {
		case reports <- report{generation: i, population: population}:
		case <-ctx.Done():
			return ctx.Err()
		}

		if !trackHistory {
			continue
		}

		stagnant := history.IsStagnant(gen)
		history.Record(gen)
		logStep(ctx, logger, i, gen, stagnant)

		if !config.StopOnStagnation {
			continue
		}
		if population == 0 {
			logger.Info("stopping early", "reason", "extinction", "generation", i)
			return nil
		}
		if stagnant {
			logger.Info("stopping early", "reason", "stagnation detected", "generation", i)
			return nil
		}
	}
	return nil
}

// logStep writes per-generation debug and trace output
func logStep(ctx context.Context, logger *slog.Logger, generation int, gen model.CellSet, stagnant bool) {
	attrs := []any{"generation", generation, "population", gen.Len(), "stagnant", stagnant}
	if b, ok := gen.Bounds(); ok {
		attrs = append(attrs, "bounding_box", fmt.Sprintf("%dx%d", b.Width(), b.Height()))
	}
	logger.Debug("generation advanced", attrs...)

	if logger.Enabled(ctx, utils.LevelTrace) {
		logger.Log(ctx, utils.LevelTrace, "generation cells", "generation", generation, "cells", gen.Sorted())
	}
}

// emitReports writes one line per report until the channel is closed
func emitReports(out io.Writer, reports <-chan report) error {
	w := bufio.NewWriter(out)
	for r := range reports {
		if _, err := fmt.Fprintf(w, "%d %d\n", r.generation, r.population); err != nil {
			return errors.Wrapf(err, "[emitReports] failed to write generation %d", r.generation)
		}
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[emitReports] failed to flush output")
	}
	return nil
}
