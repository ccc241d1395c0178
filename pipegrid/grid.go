// Package pipegrid provides a dense, immutable grid of pipe tiles.
//
// Every position of the bounding rectangle has an entry; characters that
// are not pipes normalize to Void. Exactly one tile must be Start.
package pipegrid

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/pipeloop"
)

// NewGrid builds a Grid from text rows, one character per tile.
// The grid width is the length of the longest row.
// Returns ErrEmptyGrid (matching ErrNoStartTile too) for no rows,
// ErrMalformedRow for ragged rows under Strict, ErrNoStartTile if no
// character is 'S', ErrMultipleStartTiles if more than one is, and
// ErrOptionViolation for bad options.
// Complexity: O(W×H) time and memory.
func NewGrid(rows []string, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrEmptyGrid, ErrNoStartTile)
	}

	w := 0
	for _, row := range rows {
		w = max(w, utf8.RuneCountInString(row))
	}
	h := len(rows)

	tiles := make([][]TileType, h)
	starts := 0
	var start Coordinate
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != w {
			if o.RowPolicy == Strict {
				return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrMalformedRow, y, n, w)
			}
			pipeloop.Logger().Warn("pipegrid: padding short row with void",
				"row", y, "len", n, "width", w)
		}
		// Missing positions stay Void (zero value).
		tiles[y] = make([]TileType, w)
		x := 0
		for _, r := range row {
			t := ParseTile(r)
			tiles[y][x] = t
			if t == Start {
				starts++
				start = Coordinate{X: x, Y: y}
			}
			x++
		}
	}

	switch {
	case starts == 0:
		return nil, ErrNoStartTile
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStartTiles, starts)
	}

	pipeloop.Logger().Debug("pipegrid: grid built",
		"width", w, "height", h, "start", start.String())

	return &Grid{width: w, height: h, tiles: tiles, start: start}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Bounds returns the largest valid column and row indices.
func (g *Grid) Bounds() (maxX, maxY int) {
	return g.width - 1, g.height - 1
}

// Start returns the coordinate of the unique Start tile.
func (g *Grid) Start() Coordinate { return g.start }

// InBounds reports whether c lies within the grid rectangle.
// Complexity: O(1).
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// TileAt returns the tile at c, or Void when c is outside the grid.
// Complexity: O(1).
func (g *Grid) TileAt(c Coordinate) TileType {
	if !g.InBounds(c) {
		return Void
	}
	return g.tiles[c.Y][c.X]
}

// Neighbor returns the coordinate adjacent to c in direction d and
// whether it lies within the grid.
func (g *Grid) Neighbor(c Coordinate, d Direction) (Coordinate, bool) {
	n := c.Step(d)
	return n, g.InBounds(n)
}

// Coordinates yields every coordinate of the rectangle in row-major order.
func (g *Grid) Coordinates() iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(Coordinate{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Rows returns the grid as canonical text rows. Padded positions come
// back as '.', so Rows of a ragged input is rectangular.
func (g *Grid) Rows() []string {
	out := make([]string, g.height)
	var sb strings.Builder
	for y, row := range g.tiles {
		sb.Reset()
		for _, t := range row {
			sb.WriteRune(t.Rune())
		}
		out[y] = sb.String()
	}
	return out
}

// String joins Rows with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
