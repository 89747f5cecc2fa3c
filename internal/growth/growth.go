// Package growth measures how an arraylist.ArrayList expands under a stream of appends.
package growth

import (
	"context"
	"fmt"

	"github.com/a-peyrard/collections/arraylist"
	"github.com/a-peyrard/collections/runner"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cancellationCheckInterval is the number of appends between two context checks.
const cancellationCheckInterval = 1024

type (
	// Experiment appends Appends integers to a list created with InitialCapacity.
	Experiment struct {
		ID              uuid.UUID
		InitialCapacity int
		Appends         int

		logger zerolog.Logger
		report *Report
	}

	// Report is what an Experiment observed.
	Report struct {
		ID                uuid.UUID
		InitialCapacity   int
		Appends           int
		Expansions        int
		Expected          int
		ExpandMoveCounter int
		FinalCapacity     int
		// Capacities holds the capacity after each append.
		Capacities []int
	}
)

// NewExperiment creates an experiment with a fresh random ID.
func NewExperiment(initialCapacity, appends int, logger zerolog.Logger) *Experiment {
	id := uuid.New()
	return &Experiment{
		ID:              id,
		InitialCapacity: initialCapacity,
		Appends:         appends,
		logger:          logger.With().Stringer("experiment", id).Int("initial_capacity", initialCapacity).Logger(),
	}
}

// Run implements runner.Runnable.
func (e *Experiment) Run(ctx context.Context) error {
	if e.InitialCapacity < 0 || e.Appends < 0 {
		return fmt.Errorf("experiment %s: capacity %d and appends %d must not be negative", e.ID, e.InitialCapacity, e.Appends)
	}

	e.logger.Debug().Int("appends", e.Appends).Msg("starting experiment")
	list := arraylist.New[int](arraylist.WithInitialCapacity(e.InitialCapacity), arraylist.WithLogger(e.logger))
	capacities := make([]int, 0, e.Appends)
	for i := 0; i < e.Appends; i++ {
		if i%cancellationCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("experiment %s interrupted after %d appends: %w", e.ID, i, err)
			}
		}
		list.Append(i)
		capacities = append(capacities, list.Capacity())
	}

	e.report = &Report{
		ID:                e.ID,
		InitialCapacity:   e.InitialCapacity,
		Appends:           e.Appends,
		Expansions:        list.ExpandCounter(),
		Expected:          ExpectedExpansions(e.Appends, e.InitialCapacity),
		ExpandMoveCounter: list.ExpandMoveCounter(),
		FinalCapacity:     list.Capacity(),
		Capacities:        capacities,
	}
	e.logger.Info().
		Int("expansions", e.report.Expansions).
		Int("expected", e.report.Expected).
		Int("final_capacity", e.report.FinalCapacity).
		Msg("experiment done")
	return nil
}

// Report returns what the experiment observed, nil until Run succeeded.
func (e *Experiment) Report() *Report {
	return e.report
}

// Matches reports whether the observed number of expansions is the expected one.
func (r *Report) Matches() bool {
	return r.Expansions == r.Expected
}

// ExpectedExpansions is the number of buffer expansions needed to append appends elements
// to an empty list of the given capacity: ceil(log2(appends/capacity)) when appends exceeds
// capacity, plus one initial expansion to a single slot when capacity is 0.
func ExpectedExpansions(appends, capacity int) int {
	if appends <= capacity {
		return 0
	}
	expansions := 0
	if capacity == 0 {
		capacity = 1
		expansions++
	}
	for ; capacity < appends; capacity *= 2 {
		expansions++
	}
	return expansions
}

// Run runs one experiment per capacity, at most parallelism at a time (no limit below 1),
// and returns their reports in the order of capacities.
func Run(ctx context.Context, logger zerolog.Logger, appends int, capacities []int, parallelism int) ([]*Report, error) {
	experiments := make([]*Experiment, len(capacities))
	runnables := make([]runner.Runnable, len(capacities))
	for i, capacity := range capacities {
		experiments[i] = NewExperiment(capacity, appends, logger)
		runnables[i] = experiments[i]
	}

	if err := runner.RunAll(ctx, parallelism, runnables...); err != nil {
		return nil, fmt.Errorf("growth experiments failed: %w", err)
	}

	reports := make([]*Report, len(experiments))
	for i, experiment := range experiments {
		reports[i] = experiment.Report()
	}
	return reports, nil
}
