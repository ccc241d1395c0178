package region

import (
	"fmt"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/looptrace"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Classify labels every tile of grid not in loop as inside or outside.
// loop is normally looptrace.Loop.Tiles.
func Classify(grid *pipegrid.Grid, loop pipegrid.CoordinateSet, opts ...Option) (*Regions, error) {
	if grid == nil {
		return nil, ErrGridNil
	}
	if loop == nil {
		return nil, ErrLoopNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	startTile := pipegrid.Start
	if o.StartPolicy == InferStart {
		t, err := looptrace.InferStart(grid, loop)
		if err != nil {
			return nil, fmt.Errorf("region: %w", err)
		}
		startTile = t
	}

	w, h := grid.Width(), grid.Height()
	r := &Regions{
		Interior:  pipegrid.NewCoordinateSet(0),
		StartTile: startTile,
		width:     w,
		height:    h,
		view:      make([][]pipegrid.TileType, h),
	}

	// Step 1: filtered view. Off-loop tiles stay Void (zero value).
	for y := range r.view {
		r.view[y] = make([]pipegrid.TileType, w)
	}
	for c := range grid.Coordinates() {
		if !loop.Contains(c) {
			continue
		}
		t := grid.TileAt(c)
		if t == pipegrid.Start {
			t = startTile
		}
		r.view[c.Y][c.X] = t
		r.LoopCount++
	}

	// Step 2: parity scan of every Void tile.
	for y, row := range r.view {
		for x, t := range row {
			if t != pipegrid.Void {
				continue
			}
			if crossings(row, x)%2 == 1 {
				r.Interior.Add(pipegrid.Coordinate{X: x, Y: y})
			} else {
				r.ExteriorCount++
			}
		}
	}

	pipeloop.Logger().Debug("region: classified",
		"start_policy", o.StartPolicy.String(),
		"start_tile", startTile.String(),
		"loop", r.LoopCount,
		"interior", r.Interior.Len(),
		"exterior", r.ExteriorCount)

	return r, nil
}

// crossings counts boundary crossings of a ray from row[x] to the left edge.
// Corners are paired in the order the scan meets them; only the consecutive
// pairs J…F and 7…L change vertical side and so cross the ray.
func crossings(row []pipegrid.TileType, x int) int {
	n := 0
	prev, havePrev := pipegrid.Void, false
	for i := x - 1; i >= 0; i-- {
		t := row[i]
		switch t {
		case pipegrid.Void, pipegrid.EastWest:
			continue
		case pipegrid.NorthSouth:
			n++
			continue
		}
		if havePrev && ((prev == pipegrid.NorthWest && t == pipegrid.SouthEast) ||
			(prev == pipegrid.SouthWest && t == pipegrid.NorthEast)) {
			n++
		}
		prev, havePrev = t, true
	}
	return n
}

// Width returns the number of columns classified.
func (r *Regions) Width() int { return r.width }

// Height returns the number of rows classified.
func (r *Regions) Height() int { return r.height }

// InBounds reports whether c lies within the classified rectangle.
func (r *Regions) InBounds(c pipegrid.Coordinate) bool {
	return c.X >= 0 && c.X < r.width && c.Y >= 0 && c.Y < r.height
}

// View returns the filtered-view tile at c: the loop tile (with Start
// replaced per policy) or Void for everything else.
func (r *Regions) View(c pipegrid.Coordinate) pipegrid.TileType {
	if !r.InBounds(c) {
		return pipegrid.Void
	}
	return r.view[c.Y][c.X]
}

// Label classifies c. Repeated calls return the same label.
func (r *Regions) Label(c pipegrid.Coordinate) Label {
	switch {
	case !r.InBounds(c):
		return OutOfBounds
	case r.view[c.Y][c.X] != pipegrid.Void:
		return Loop
	case r.Interior.Contains(c):
		return Inside
	default:
		return Outside
	}
}

// Crossings returns the boundary crossings counted for c, or 0 for loop
// tiles and out-of-bounds coordinates.
func (r *Regions) Crossings(c pipegrid.Coordinate) int {
	if !r.InBounds(c) || r.view[c.Y][c.X] != pipegrid.Void {
		return 0
	}
	return crossings(r.view[c.Y], c.X)
}
