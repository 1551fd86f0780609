// Package sweep measures how long random boards take to stabilise as a
// function of their initial live density.
package sweep

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/sheikhrachel/life-patterns/model"
)

// Options configures a sweep
type Options struct {
	Width          int
	Height         int
	CellSize       int
	Densities      []float64
	Threshold      int
	MaxGenerations int
	Parallel       int64
	Seed           int64
}

// Result is one run: the generation at which the board first became stable,
// or Stable false when MaxGenerations ran out first.
type Result struct {
	Density          float64
	StableGeneration int
	Stable           bool
}

// Densities returns from, from+step, ... up to and including to
func Densities(from, to, step float64) []float64 {
	var out []float64
	if step <= 0 {
		return out
	}
	for i := 0; ; i++ {
		d := from + float64(i)*step
		if d > to+step/2 {
			break
		}
		out = append(out, d)
	}
	return out
}

// Run simulates one board per density; at most Parallel boards run at a time.
// Results keep the order of Densities.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Parallel <= 0 {
		opts.Parallel = 1
	}
	for _, d := range opts.Densities {
		if d < 0 || d > 1 {
			return nil, errors.Errorf("[sweep.Run] density %v outside [0,1]", d)
		}
	}

	var (
		results = make([]Result, len(opts.Densities))
		sem     = semaphore.NewWeighted(opts.Parallel)
	)
	eg, egCtx := errgroup.WithContext(ctx)
	for i, density := range opts.Densities {
		if err := sem.Acquire(egCtx, 1); err != nil {
			break
		}
		eg.Go(func() error {
			defer sem.Release(1)
			res, err := runOne(egCtx, opts, density, opts.Seed+int64(i))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "[sweep.Run] cancelled")
	}
	return results, nil
}

func runOne(ctx context.Context, opts Options, density float64, seed int64) (Result, error) {
	board, err := model.NewBoard(opts.Width, opts.Height, opts.CellSize)
	if err != nil {
		return Result{}, errors.Wrap(err, "[sweep.runOne] failed to create board")
	}
	board.SetWorkers(1)
	board.Randomize(density, rand.New(rand.NewSource(seed)))

	tracker := model.NewStabilityTracker(opts.Threshold)
	res := Result{Density: density}
	for {
		if tracker.CheckStable(board.CountLiveCells(), board.Generation()) {
			res.StableGeneration, res.Stable = tracker.FirstStableGeneration()
			return res, nil
		}
		if opts.MaxGenerations > 0 && board.Generation() >= opts.MaxGenerations {
			return res, nil
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}
		board.Advance()
	}
}

// Write emits a header line followed by one "density generation" line per
// stable result; unstable runs are skipped.
func Write(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "density generation")
	for _, r := range results {
		if !r.Stable {
			continue
		}
		fmt.Fprintf(bw, "%.2f %d\n", r.Density, r.StableGeneration)
	}
	return errors.Wrap(bw.Flush(), "[sweep.Write] failed to flush")
}
