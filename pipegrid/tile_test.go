package pipegrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// TestParseTile checks every recognized character and the Void fallback.
func TestParseTile(t *testing.T) {
	cases := map[rune]pipegrid.TileType{
		'S': pipegrid.Start,
		'|': pipegrid.NorthSouth,
		'-': pipegrid.EastWest,
		'L': pipegrid.NorthEast,
		'J': pipegrid.NorthWest,
		'7': pipegrid.SouthWest,
		'F': pipegrid.SouthEast,
		'.': pipegrid.Void,
		'I': pipegrid.Void,
		' ': pipegrid.Void,
	}
	for r, want := range cases {
		got := pipegrid.ParseTile(r)
		assert.Equal(t, want, got, "ParseTile(%q)", r)
		if want != pipegrid.Void {
			assert.Equal(t, r, got.Rune(), "Rune round-trip for %v", want)
		}
	}
}

// TestOpens checks the open-direction table.
func TestOpens(t *testing.T) {
	N, E, S, W := pipegrid.North, pipegrid.East, pipegrid.South, pipegrid.West
	cases := []struct {
		tile pipegrid.TileType
		want []pipegrid.Direction
	}{
		{pipegrid.NorthSouth, []pipegrid.Direction{N, S}},
		{pipegrid.EastWest, []pipegrid.Direction{E, W}},
		{pipegrid.NorthEast, []pipegrid.Direction{N, E}},
		{pipegrid.NorthWest, []pipegrid.Direction{N, W}},
		{pipegrid.SouthWest, []pipegrid.Direction{S, W}},
		{pipegrid.SouthEast, []pipegrid.Direction{S, E}},
		{pipegrid.Start, []pipegrid.Direction{N, E, S, W}},
		{pipegrid.Void, nil},
	}
	for _, tc := range cases {
		t.Run(tc.tile.String(), func(t *testing.T) {
			assert.Equal(t, pipegrid.NewDirectionSet(tc.want...), pipegrid.Opens(tc.tile))
			assert.Equal(t, len(tc.want), pipegrid.Opens(tc.tile).Len())
		})
	}
}

// TestCompatible covers accepted and rejected joins, including Start.
func TestCompatible(t *testing.T) {
	cases := []struct {
		name string
		a, b pipegrid.TileType
		dir  pipegrid.Direction
		want bool
	}{
		{"EastWestChain", pipegrid.EastWest, pipegrid.EastWest, pipegrid.East, true},
		{"VerticalIntoHorizontal", pipegrid.NorthSouth, pipegrid.EastWest, pipegrid.North, false},
		{"FThenJ", pipegrid.SouthEast, pipegrid.NorthWest, pipegrid.East, true},
		{"FBelowIsL", pipegrid.SouthEast, pipegrid.NorthEast, pipegrid.South, true},
		{"LUpIs7", pipegrid.NorthEast, pipegrid.SouthWest, pipegrid.North, true},
		{"LWestBlocked", pipegrid.NorthEast, pipegrid.EastWest, pipegrid.West, false},
		{"StartAccepts7ToTheEast", pipegrid.Start, pipegrid.SouthWest, pipegrid.East, true},
		{"StartRejectsPipeFacingAway", pipegrid.Start, pipegrid.NorthEast, pipegrid.East, false},
		{"StartAcceptsDash", pipegrid.Start, pipegrid.EastWest, pipegrid.East, true},
		{"StartRejectsVoid", pipegrid.Start, pipegrid.Void, pipegrid.South, false},
		{"VoidOpensNowhere", pipegrid.Void, pipegrid.EastWest, pipegrid.East, false},
		{"PipeIntoStart", pipegrid.NorthSouth, pipegrid.Start, pipegrid.South, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pipegrid.Compatible(tc.a, tc.b, tc.dir))
		})
	}
}

// TestCompatible_Symmetric checks that every join reads the same from both ends.
func TestCompatible_Symmetric(t *testing.T) {
	all := []pipegrid.TileType{
		pipegrid.Void, pipegrid.Start, pipegrid.NorthSouth, pipegrid.EastWest,
		pipegrid.NorthEast, pipegrid.NorthWest, pipegrid.SouthWest, pipegrid.SouthEast,
	}
	for _, a := range all {
		for _, b := range all {
			for _, d := range pipegrid.Directions {
				assert.Equal(t,
					pipegrid.Compatible(a, b, d),
					pipegrid.Compatible(b, a, d.Reverse()),
					"%v->%v toward %v", a, b, d)
			}
		}
	}
}

// TestTileFromDirections maps each opening pair back to its pipe.
func TestTileFromDirections(t *testing.T) {
	for _, tile := range []pipegrid.TileType{
		pipegrid.NorthSouth, pipegrid.EastWest, pipegrid.NorthEast,
		pipegrid.NorthWest, pipegrid.SouthWest, pipegrid.SouthEast,
	} {
		var ds []pipegrid.Direction
		for _, d := range pipegrid.Directions {
			if pipegrid.Opens(tile).Has(d) {
				ds = append(ds, d)
			}
		}
		got, ok := pipegrid.TileFromDirections(ds[1], ds[0])
		assert.True(t, ok)
		assert.Equal(t, tile, got)
	}

	_, ok := pipegrid.TileFromDirections(pipegrid.North, pipegrid.North)
	assert.False(t, ok)
}

// TestDirection covers Reverse, Offset and Step.
func TestDirection(t *testing.T) {
	origin := pipegrid.Coordinate{X: 3, Y: 3}
	want := map[pipegrid.Direction]pipegrid.Coordinate{
		pipegrid.North: {X: 3, Y: 2},
		pipegrid.East:  {X: 4, Y: 3},
		pipegrid.South: {X: 3, Y: 4},
		pipegrid.West:  {X: 2, Y: 3},
	}
	for d, c := range want {
		assert.Equal(t, c, origin.Step(d), "Step(%v)", d)
		assert.Equal(t, origin, origin.Step(d).Step(d.Reverse()), "Reverse(%v)", d)
	}
	assert.Equal(t, pipegrid.South, pipegrid.North.Reverse())
	assert.Equal(t, pipegrid.West, pipegrid.East.Reverse())
	assert.Equal(t, "north", pipegrid.North.String())
}

// TestIsCorner separates corners from straights.
func TestIsCorner(t *testing.T) {
	assert.True(t, pipegrid.NorthEast.IsCorner())
	assert.True(t, pipegrid.SouthEast.IsCorner())
	assert.False(t, pipegrid.NorthSouth.IsCorner())
	assert.False(t, pipegrid.Start.IsCorner())
	assert.False(t, pipegrid.Void.IsCorner())
}
