// Package solver runs the straight pipeline
//
//	rows → pipegrid.Grid → looptrace.Loop → region.Regions
//
// and returns both puzzle answers: the loop half-length and the number of
// enclosed tiles. No stage feeds back into an earlier one.
package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/region"
)

// Option configures Solve.
type Option func(*Options)

// Options collects the per-stage options.
type Options struct {
	RowPolicy   pipegrid.RowPolicy
	StartPolicy region.StartPolicy
}

// DefaultOptions pads ragged rows and infers the start shape.
func DefaultOptions() Options {
	return Options{
		RowPolicy:   pipegrid.PadVoid,
		StartPolicy: region.InferStart,
	}
}

// WithRowPolicy forwards p to pipegrid.NewGrid, which rejects unknown values.
func WithRowPolicy(p pipegrid.RowPolicy) Option {
	return func(o *Options) { o.RowPolicy = p }
}

// WithStartPolicy forwards p to region.Classify, which rejects unknown values.
func WithStartPolicy(p region.StartPolicy) Option {
	return func(o *Options) { o.StartPolicy = p }
}

// Result holds every artifact of one run.
type Result struct {
	Grid    *pipegrid.Grid
	Loop    *looptrace.Loop
	Regions *region.Regions

	// HalfLength is answer one: steps from Start to the farthest loop tile.
	HalfLength int
	// Interior is answer two: tiles enclosed by the loop.
	Interior int
	// Elapsed is the wall time of the whole pipeline.
	Elapsed time.Duration
}

// Solve builds the grid, traces and validates the loop, then classifies
// the remaining tiles. Errors from any stage abort the run; no partial
// Result is returned.
func Solve(ctx context.Context, rows []string, opts ...Option) (*Result, error) {
	began := time.Now()
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	grid, err := pipegrid.NewGrid(rows, pipegrid.WithRowPolicy(o.RowPolicy))
	if err != nil {
		return nil, fmt.Errorf("solver: building grid: %w", err)
	}
	loop, err := looptrace.Trace(grid, looptrace.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("solver: tracing loop: %w", err)
	}
	if err := looptrace.Validate(grid, loop.Tiles); err != nil {
		return nil, fmt.Errorf("solver: validating loop: %w", err)
	}
	regions, err := region.Classify(grid, loop.Tiles, region.WithStartPolicy(o.StartPolicy))
	if err != nil {
		return nil, fmt.Errorf("solver: classifying regions: %w", err)
	}

	res := &Result{
		Grid:       grid,
		Loop:       loop,
		Regions:    regions,
		HalfLength: loop.HalfLength,
		Interior:   regions.Interior.Len(),
		Elapsed:    time.Since(began),
	}
	pipeloop.Logger().Info("solver: solved",
		"width", grid.Width(),
		"height", grid.Height(),
		"half_length", res.HalfLength,
		"interior", res.Interior,
		"elapsed", res.Elapsed)

	return res, nil
}
