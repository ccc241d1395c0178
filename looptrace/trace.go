package looptrace

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// queueItem pairs a coordinate with its BFS depth.
type queueItem struct {
	at    pipegrid.Coordinate
	depth int
}

// walker encapsulates mutable tracing state.
type walker struct {
	grid  *pipegrid.Grid
	opts  Options
	ctx   context.Context
	queue []queueItem
	head  int
	res   *Loop
}

// Trace runs breadth-first search over grid starting from grid.Start().
// A neighbour is followed iff it lies within the grid and
// pipegrid.Compatible(tile, neighbour, direction) holds.
// Returns ErrGridNil, ErrOptionViolation, ctx.Err() on cancellation, or
// any OnVisit error wrapped with the coordinate it occurred at.
func Trace(grid *pipegrid.Grid, opts ...Option) (*Loop, error) {
	if grid == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		grid:  grid,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, 64),
		res: &Loop{
			Start: grid.Start(),
			Tiles: pipegrid.NewCoordinateSet(64),
			Depth: make(map[pipegrid.Coordinate]int, 64),
		},
	}

	w.enqueue(grid.Start(), 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	res := w.res
	res.HalfLength = len(res.Tiles) / 2
	for _, c := range res.Order {
		if res.Depth[c] == res.MaxDepth {
			res.Farthest = append(res.Farthest, c)
		}
	}

	pipeloop.Logger().Debug("looptrace: loop traced",
		"start", res.Start.String(),
		"tiles", len(res.Tiles),
		"half_length", res.HalfLength,
		"max_depth", res.MaxDepth)

	return res, nil
}

// enqueue marks c visited at depth d, calls OnEnqueue and appends it to the queue.
func (w *walker) enqueue(c pipegrid.Coordinate, d int) {
	w.res.Tiles.Add(c)
	w.res.Depth[c] = d
	w.res.MaxDepth = max(w.res.MaxDepth, d)
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{at: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.at)
		if err := w.opts.OnVisit(item.at, item.depth); err != nil {
			return fmt.Errorf("looptrace: OnVisit error at %v: %w", item.at, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors enqueues every unseen, in-bounds, compatible neighbour.
func (w *walker) enqueueNeighbors(item queueItem) error {
	from := w.grid.TileAt(item.at)
	for _, d := range pipegrid.Directions {
		nbr, ok := w.grid.Neighbor(item.at, d)
		if !ok {
			continue
		}
		dir, err := DirectionBetween(item.at, nbr)
		if err != nil {
			return err
		}
		if !pipegrid.Compatible(from, w.grid.TileAt(nbr), dir) {
			continue
		}
		if !w.res.Tiles.Contains(nbr) {
			w.enqueue(nbr, item.depth+1)
		}
	}
	return nil
}

// DirectionBetween classifies the unit step from -> to.
// Returns ErrBrokenAdjacency unless the two coordinates differ by exactly
// one along a single axis.
func DirectionBetween(from, to pipegrid.Coordinate) (pipegrid.Direction, error) {
	dx, dy := to.X-from.X, to.Y-from.Y
	switch {
	case dx == 0 && dy == -1:
		return pipegrid.North, nil
	case dx == 1 && dy == 0:
		return pipegrid.East, nil
	case dx == 0 && dy == 1:
		return pipegrid.South, nil
	case dx == -1 && dy == 0:
		return pipegrid.West, nil
	default:
		return 0, fmt.Errorf("%w: from %v to %v", ErrBrokenAdjacency, from, to)
	}
}
