package render

import (
	"bufio"
	"io"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/region"
)

var boxRunes = map[pipegrid.TileType]rune{
	pipegrid.NorthSouth: '│',
	pipegrid.EastWest:   '─',
	pipegrid.NorthEast:  '└',
	pipegrid.NorthWest:  '┘',
	pipegrid.SouthWest:  '┐',
	pipegrid.SouthEast:  '┌',
	pipegrid.Start:      'S',
}

// Rune returns the ASCII-render character for c.
func Rune(r *region.Regions, c pipegrid.Coordinate) rune {
	switch r.Label(c) {
	case region.Loop:
		return boxRunes[r.View(c)]
	case region.Inside:
		return 'I'
	case region.Outside:
		return 'O'
	default:
		return ' '
	}
}

// ASCII writes r row by row, each row terminated by a newline.
func ASCII(w io.Writer, r *region.Regions) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			if _, err := bw.WriteRune(Rune(r, pipegrid.Coordinate{X: x, Y: y})); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
