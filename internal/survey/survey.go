// Package survey runs many independent seeded worlds headlessly and
// summarizes how long their populations last.
package survey

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"aqualife/internal/core"
	"aqualife/internal/sims/life"
)

// Options controls a survey.
type Options struct {
	Runs    int
	MaxGens int
	Workers int
	Seed    int64
}

// Result describes a single run.
type Result struct {
	Seed     int64
	Draws    int
	Seeded   int
	Lifespan int
	Extinct  bool
	FinalPop int
}

// Summary aggregates a survey.
type Summary struct {
	Runs         int
	Extinct      int
	MeanLifespan float64
	MaxLifespan  int
	MeanSeeded   float64
	MeanDraws    float64
	Results      []Result
}

func (s Summary) String() string {
	return fmt.Sprintf("runs=%d extinct=%d mean lifespan=%.1f max lifespan=%d mean seeded=%.1f (mean draws %.1f)",
		s.Runs, s.Extinct, s.MeanLifespan, s.MaxLifespan, s.MeanSeeded, s.MeanDraws)
}

// Simulate seeds one world from seed and steps it until extinction or maxGens.
func Simulate(seed int64, maxGens int) Result {
	rng := core.NewRNG(seed)
	w := life.New(life.Rows, life.Cols)
	draws := life.SeedCount(rng)
	w.Seed(rng, draws)
	res := Result{Seed: seed, Draws: draws, Seeded: w.Population()}
	for w.Generation() < maxGens && w.Population() > 0 {
		w.Step(nil)
	}
	res.Lifespan = w.Generation()
	res.Extinct = w.Population() == 0
	res.FinalPop = w.Population()
	return res
}

// Run executes opts.Runs simulations with seeds opts.Seed, opts.Seed+1, ...
// on up to opts.Workers goroutines.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.Runs <= 0 {
		return Summary{}, fmt.Errorf("survey: runs must be positive, got %d", opts.Runs)
	}
	if opts.MaxGens <= 0 {
		return Summary{}, fmt.Errorf("survey: max generations must be positive, got %d", opts.MaxGens)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, opts.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range results {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Simulate(opts.Seed+int64(i), opts.MaxGens)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return Summarize(results), nil
}

// Summarize aggregates per-run results.
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results), Results: results}
	if len(results) == 0 {
		return s
	}
	var lifespans, seeded, draws int
	for _, r := range results {
		if r.Extinct {
			s.Extinct++
		}
		lifespans += r.Lifespan
		seeded += r.Seeded
		draws += r.Draws
		s.MaxLifespan = max(s.MaxLifespan, r.Lifespan)
	}
	n := float64(len(results))
	s.MeanLifespan = float64(lifespans) / n
	s.MeanSeeded = float64(seeded) / n
	s.MeanDraws = float64(draws) / n
	return s
}
