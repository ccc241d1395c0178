package pipegrid

import (
	"cmp"
	"fmt"
	"slices"
)

// Coordinate addresses one tile: X is the column, Y is the row.
// Y grows downward, so North is Y-1.
type Coordinate struct {
	X, Y int
}

// Step returns the coordinate one unit away in direction d.
func (c Coordinate) Step(d Direction) Coordinate {
	dx, dy := d.Offset()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// String formats the coordinate as "x,y".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// compareRowMajor orders coordinates by row, then column.
func compareRowMajor(a, b Coordinate) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// CoordinateSet is an unordered set of coordinates.
type CoordinateSet map[Coordinate]struct{}

// NewCoordinateSet returns an empty set sized for n members.
func NewCoordinateSet(n int) CoordinateSet {
	return make(CoordinateSet, n)
}

// Add inserts c.
func (s CoordinateSet) Add(c Coordinate) {
	s[c] = struct{}{}
}

// Remove deletes c if present.
func (s CoordinateSet) Remove(c Coordinate) {
	delete(s, c)
}

// Contains reports whether c is a member.
func (s CoordinateSet) Contains(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of members.
func (s CoordinateSet) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s CoordinateSet) Clone() CoordinateSet {
	out := make(CoordinateSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Sorted returns the members in row-major order.
func (s CoordinateSet) Sorted() []Coordinate {
	out := make([]Coordinate, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, compareRowMajor)
	return out
}

// RowPolicy selects how rows shorter than the widest row are handled.
type RowPolicy int

const (
	// PadVoid fills missing positions with Void.
	PadVoid RowPolicy = iota
	// Strict rejects ragged input with ErrMalformedRow.
	Strict
)

// String returns "pad" or "strict".
func (p RowPolicy) String() string {
	switch p {
	case PadVoid:
		return "pad"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("RowPolicy(%d)", int(p))
	}
}

// Option configures grid construction.
type Option func(*Options)

// Options holds grid construction parameters.
type Options struct {
	// RowPolicy decides what happens to ragged rows.
	RowPolicy RowPolicy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with RowPolicy=PadVoid.
func DefaultOptions() Options {
	return Options{RowPolicy: PadVoid}
}

// WithRowPolicy selects the ragged-row policy.
// Unknown policies are reported as ErrOptionViolation by NewGrid.
func WithRowPolicy(p RowPolicy) Option {
	return func(o *Options) {
		switch p {
		case PadVoid, Strict:
			o.RowPolicy = p
		default:
			o.err = fmt.Errorf("%w: unknown row policy %d", ErrOptionViolation, int(p))
		}
	}
}

// Grid is an immutable, dense mapping from Coordinate to TileType.
// tiles[y][x] holds the tile at column x, row y.
type Grid struct {
	width, height int
	tiles         [][]TileType
	start         Coordinate
}
