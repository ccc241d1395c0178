// Package looptrace provides tunable options, error definitions and the
// result type for loop tracing.
package looptrace

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for loop tracing.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("looptrace: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("looptrace: invalid option supplied")

	// ErrBrokenAdjacency is returned when a direction is requested between
	// coordinates that are not one cardinal unit step apart.
	ErrBrokenAdjacency = errors.New("looptrace: coordinates are not adjacent")

	// ErrOpenLoop is returned when a loop member does not have exactly two
	// member neighbours, or the start tile is not a member.
	ErrOpenLoop = errors.New("looptrace: tiles do not form a closed loop")

	// ErrAmbiguousStart is returned when the start tile does not join
	// exactly two loop members.
	ErrAmbiguousStart = errors.New("looptrace: start tile shape is ambiguous")
)

// Option configures Trace via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize tracing.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued tile.
	Ctx context.Context

	// OnEnqueue is called when a tile is first discovered.
	OnEnqueue func(c pipegrid.Coordinate, depth int)

	// OnVisit is called when a tile is dequeued. A non-nil error aborts Trace.
	OnVisit func(c pipegrid.Coordinate, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(pipegrid.Coordinate, int) {},
		OnVisit:   func(pipegrid.Coordinate, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
// A nil context is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(c pipegrid.Coordinate, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the trace.
func WithOnVisit(fn func(c pipegrid.Coordinate, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Loop holds the outcome of a trace:
//   - Start: the seed coordinate.
//   - Tiles: every coordinate reached from Start.
//   - Order: tiles in visit sequence, Start first.
//   - Depth: BFS distance of each tile from Start.
//   - HalfLength: |Tiles| / 2.
//   - MaxDepth: the largest BFS distance.
//   - Farthest: tiles at MaxDepth, in visit order.
type Loop struct {
	Start      pipegrid.Coordinate
	Tiles      pipegrid.CoordinateSet
	Order      []pipegrid.Coordinate
	Depth      map[pipegrid.Coordinate]int
	HalfLength int
	MaxDepth   int
	Farthest   []pipegrid.Coordinate
}

// Len returns the number of loop tiles.
func (l *Loop) Len() int {
	return len(l.Tiles)
}

// Contains reports whether c is on the loop.
func (l *Loop) Contains(c pipegrid.Coordinate) bool {
	return l.Tiles.Contains(c)
}
