// Package sweep runs many headless Game of Life worlds to gather statistics
// on how long seeds live and how they end.
package sweep

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"life-matrix/internal/core"
	"life-matrix/internal/sims/life"

	"golang.org/x/sync/errgroup"
)

// Result describes one seed's run up to its first summary.
type Result struct {
	Seed    int64
	Summary life.Summary
	// Finished is false when the run hit the generation cap first.
	Finished       bool
	Generations    int
	PeakPopulation int
	Populations    []int
}

// Options controls a sweep.
type Options struct {
	Base           life.Config
	Seeds          []int64
	MaxGenerations int
	Workers        int
	Logger         *slog.Logger
}

// Run simulates every seed and returns the results in seed order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.MaxGenerations <= 0 {
		return nil, fmt.Errorf("sweep: max generations must be positive, got %d", opts.MaxGenerations)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	results := make([]Result, len(opts.Seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range opts.Seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := RunSeed(ctx, opts.Base, seed, opts.MaxGenerations)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			if opts.Logger != nil {
				opts.Logger.Debug("seed finished", "seed", seed, "generations", res.Generations,
					"reason", string(res.Summary.Reason), "finished", res.Finished)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunSeed drives a single world on a synthetic always-visible clock until it
// produces a summary or reaches maxGenerations.
func RunSeed(ctx context.Context, base life.Config, seed int64, maxGenerations int) (Result, error) {
	cfg := base
	cfg.Seed = seed
	cfg.DemoEnabled = false

	var (
		summary life.Summary
		done    bool
	)
	a := life.New(cfg, life.WithSummaryHook(func(s life.Summary) {
		if !done {
			summary, done = s, true
		}
	}))

	res := Result{Seed: seed}
	step := core.MillisOf(a.Config().UpdateIntervalMs)
	var now core.Millis
	a.Tick(now, true, false)
	res.Populations = append(res.Populations, a.Population())
	res.PeakPopulation = a.Population()

	for a.Generation() < maxGenerations && !done {
		if a.Generation()%256 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		now += step
		a.Tick(now, true, false)
		res.Populations = append(res.Populations, a.Population())
		res.PeakPopulation = max(res.PeakPopulation, a.Population())
	}
	res.Generations = a.Generation()
	res.Summary = summary
	res.Finished = done
	return res, nil
}

// Report aggregates a sweep.
type Report struct {
	Runs       int
	Unfinished int
	Reasons    map[life.Reason]int
	MinGen     int
	MedianGen  int
	MaxGen     int
	MeanGen    float64
	Longest    Result
}

// Summarize computes a Report over results.
func Summarize(results []Result) Report {
	rep := Report{Runs: len(results), Reasons: map[life.Reason]int{}}
	if len(results) == 0 {
		return rep
	}
	gens := make([]int, 0, len(results))
	total := 0
	for _, r := range results {
		if r.Finished {
			rep.Reasons[r.Summary.Reason]++
		} else {
			rep.Unfinished++
		}
		gens = append(gens, r.Generations)
		total += r.Generations
		if r.Generations > rep.Longest.Generations || rep.Longest.Populations == nil {
			rep.Longest = r
		}
	}
	slices.Sort(gens)
	rep.MinGen = gens[0]
	rep.MaxGen = gens[len(gens)-1]
	rep.MedianGen = gens[len(gens)/2]
	rep.MeanGen = float64(total) / float64(len(gens))
	return rep
}

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	out := make([]int64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, first+int64(i))
	}
	return out
}
