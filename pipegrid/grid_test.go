package pipegrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

//----------------------------------------------------------------------------//
// NewGrid Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects grids without a single start.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		opts []pipegrid.Option
		err  error
	}{
		{"NoRows", nil, nil, pipegrid.ErrNoStartTile},
		{"NoRowsEmpty", []string{}, nil, pipegrid.ErrEmptyGrid},
		{"NoStart", []string{"F-7", "|.|", "L-J"}, nil, pipegrid.ErrNoStartTile},
		{"TwoStarts", []string{"S-S"}, nil, pipegrid.ErrMultipleStartTiles},
		{"StrictRagged", []string{"S-7", "|"}, []pipegrid.Option{pipegrid.WithRowPolicy(pipegrid.Strict)}, pipegrid.ErrMalformedRow},
		{"BadPolicy", []string{"S"}, []pipegrid.Option{pipegrid.WithRowPolicy(pipegrid.RowPolicy(9))}, pipegrid.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipegrid.NewGrid(tc.rows, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestNewGrid_Dense checks start discovery, bounds and void normalization.
func TestNewGrid_Dense(t *testing.T) {
	g, err := pipegrid.NewGrid([]string{
		".....",
		".S-7.",
		".|x|.",
		".L-J.",
		".....",
	})
	require.NoError(t, err)

	assert.Equal(t, pipegrid.Coordinate{X: 1, Y: 1}, g.Start())
	maxX, maxY := g.Bounds()
	assert.Equal(t, 4, maxX)
	assert.Equal(t, 4, maxY)
	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 5, g.Height())

	assert.Equal(t, pipegrid.Start, g.TileAt(pipegrid.Coordinate{X: 1, Y: 1}))
	assert.Equal(t, pipegrid.SouthWest, g.TileAt(pipegrid.Coordinate{X: 3, Y: 1}))
	assert.Equal(t, pipegrid.NorthWest, g.TileAt(pipegrid.Coordinate{X: 3, Y: 3}))
	// 'x' is not a pipe character.
	assert.Equal(t, pipegrid.Void, g.TileAt(pipegrid.Coordinate{X: 2, Y: 2}))
}

// TestTileAt_OutOfBounds ensures out-of-grid lookups are Void, never a failure.
func TestTileAt_OutOfBounds(t *testing.T) {
	g, err := pipegrid.NewGrid([]string{"S-7", "|.|", "L-J"})
	require.NoError(t, err)

	for _, c := range []pipegrid.Coordinate{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 3}, {X: 100, Y: 100}} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		assert.Equal(t, pipegrid.Void, g.TileAt(c), "TileAt(%v)", c)
	}
}

// TestNewGrid_PadRagged pads short rows with Void under the default policy.
func TestNewGrid_PadRagged(t *testing.T) {
	g, err := pipegrid.NewGrid([]string{"S-7", "|", "L-J"})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, pipegrid.Void, g.TileAt(pipegrid.Coordinate{X: 2, Y: 1}))
	assert.Equal(t, []string{"S-7", "|..", "L-J"}, g.Rows())
}

// TestGrid_Coordinates walks the rectangle row-major and stops early on demand.
func TestGrid_Coordinates(t *testing.T) {
	g, err := pipegrid.NewGrid([]string{"S.", ".."})
	require.NoError(t, err)

	var got []pipegrid.Coordinate
	for c := range g.Coordinates() {
		got = append(got, c)
	}
	assert.Equal(t, []pipegrid.Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, got)

	n := 0
	for range g.Coordinates() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

// TestGrid_String round-trips canonical input.
func TestGrid_String(t *testing.T) {
	in := []string{"7-F7-", ".FJ|7", "SJLL7", "|F--J", "LJ.LJ"}
	g, err := pipegrid.NewGrid(in)
	require.NoError(t, err)
	assert.Equal(t, in, g.Rows())
	assert.Equal(t, "7-F7-\n.FJ|7\nSJLL7\n|F--J\nLJ.LJ", g.String())
}

// TestNeighbor reports in-bounds status alongside the stepped coordinate.
func TestNeighbor(t *testing.T) {
	g, err := pipegrid.NewGrid([]string{"S-", ".."})
	require.NoError(t, err)

	n, ok := g.Neighbor(pipegrid.Coordinate{}, pipegrid.East)
	assert.True(t, ok)
	assert.Equal(t, pipegrid.Coordinate{X: 1, Y: 0}, n)

	n, ok = g.Neighbor(pipegrid.Coordinate{}, pipegrid.North)
	assert.False(t, ok)
	assert.Equal(t, pipegrid.Coordinate{X: 0, Y: -1}, n)
}

// TestCoordinateSet covers membership and row-major sorting.
func TestCoordinateSet(t *testing.T) {
	s := pipegrid.NewCoordinateSet(4)
	s.Add(pipegrid.Coordinate{X: 2, Y: 1})
	s.Add(pipegrid.Coordinate{X: 0, Y: 1})
	s.Add(pipegrid.Coordinate{X: 5, Y: 0})
	s.Add(pipegrid.Coordinate{X: 5, Y: 0})

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(pipegrid.Coordinate{X: 0, Y: 1}))
	assert.Equal(t, []pipegrid.Coordinate{{X: 5, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}}, s.Sorted())

	c := s.Clone()
	c.Remove(pipegrid.Coordinate{X: 5, Y: 0})
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, s.Len(), "clone must not alias")
}
