package looptrace

import (
	"fmt"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// loopNeighbors returns the directions from c to members of tiles that
// are joined to c under pipegrid.Compatible.
func loopNeighbors(grid *pipegrid.Grid, tiles pipegrid.CoordinateSet, c pipegrid.Coordinate) []pipegrid.Direction {
	from := grid.TileAt(c)
	var out []pipegrid.Direction
	for _, d := range pipegrid.Directions {
		nbr, ok := grid.Neighbor(c, d)
		if !ok || !tiles.Contains(nbr) {
			continue
		}
		if pipegrid.Compatible(from, grid.TileAt(nbr), d) {
			out = append(out, d)
		}
	}
	return out
}

// Validate reports whether tiles form one closed loop through the start
// tile: start must be a member and every member must be joined to exactly
// two other members. A set with a tile removed from a valid loop fails,
// which makes Validate a corruption check for Loop.Tiles.
// Returns ErrGridNil or ErrOpenLoop naming the first offending coordinate
// in row-major order.
func Validate(grid *pipegrid.Grid, tiles pipegrid.CoordinateSet) error {
	if grid == nil {
		return ErrGridNil
	}
	if !tiles.Contains(grid.Start()) {
		return fmt.Errorf("%w: start %v is not a member", ErrOpenLoop, grid.Start())
	}
	for _, c := range tiles.Sorted() {
		if n := len(loopNeighbors(grid, tiles, c)); n != 2 {
			return fmt.Errorf("%w: %v (%v) has %d loop neighbours", ErrOpenLoop, c, grid.TileAt(c), n)
		}
	}
	return nil
}

// InferStart returns the pipe type hidden under the start tile: the shape
// opening toward the two loop members that open back toward Start.
// Returns ErrGridNil, or ErrAmbiguousStart if Start joins any number of
// members other than two.
func InferStart(grid *pipegrid.Grid, tiles pipegrid.CoordinateSet) (pipegrid.TileType, error) {
	if grid == nil {
		return pipegrid.Void, ErrGridNil
	}
	ds := loopNeighbors(grid, tiles, grid.Start())
	if len(ds) != 2 {
		return pipegrid.Void, fmt.Errorf("%w: start %v joins %d loop tiles", ErrAmbiguousStart, grid.Start(), len(ds))
	}
	t, ok := pipegrid.TileFromDirections(ds[0], ds[1])
	if !ok {
		return pipegrid.Void, fmt.Errorf("%w: no pipe opens %v and %v", ErrAmbiguousStart, ds[0], ds[1])
	}
	pipeloop.Logger().Debug("looptrace: start shape inferred",
		"start", grid.Start().String(), "tile", t.String())
	return t, nil
}
