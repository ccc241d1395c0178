package pipegrid

import "fmt"

// Direction is one of the four compass directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four directions clockwise from North.
var Directions = [4]Direction{North, East, South, West}

// offsets are indexed by Direction; Y grows downward.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Offset returns the unit (dx, dy) step for d.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d&3]
	return o[0], o[1]
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return (d + 2) & 3
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// DirectionSet is a bit set of directions.
type DirectionSet uint8

// NewDirectionSet builds a set from ds.
func NewDirectionSet(ds ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range ds {
		s |= 1 << d
	}
	return s
}

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// Len returns the number of directions in the set.
func (s DirectionSet) Len() int {
	n := 0
	for _, d := range Directions {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// TileType is the content of one grid cell.
// The zero value is Void, which is also what out-of-grid lookups return.
type TileType uint8

const (
	Void TileType = iota
	Start
	NorthSouth
	EastWest
	NorthEast
	NorthWest
	SouthWest
	SouthEast
)

// pipeTypes lists every type with a fixed pair of openings.
var pipeTypes = [...]TileType{NorthSouth, EastWest, NorthEast, NorthWest, SouthWest, SouthEast}

// openings is the open-direction table. Start is permissive: its real
// openings are only known after the loop has been traced.
var openings = [...]DirectionSet{
	Void:       0,
	Start:      NewDirectionSet(North, East, South, West),
	NorthSouth: NewDirectionSet(North, South),
	EastWest:   NewDirectionSet(East, West),
	NorthEast:  NewDirectionSet(North, East),
	NorthWest:  NewDirectionSet(North, West),
	SouthWest:  NewDirectionSet(South, West),
	SouthEast:  NewDirectionSet(South, East),
}

var runes = [...]rune{
	Void:       '.',
	Start:      'S',
	NorthSouth: '|',
	EastWest:   '-',
	NorthEast:  'L',
	NorthWest:  'J',
	SouthWest:  '7',
	SouthEast:  'F',
}

var names = [...]string{
	Void:       "Void",
	Start:      "Start",
	NorthSouth: "NorthSouth",
	EastWest:   "EastWest",
	NorthEast:  "NorthEast",
	NorthWest:  "NorthWest",
	SouthWest:  "SouthWest",
	SouthEast:  "SouthEast",
}

// ParseTile maps an input character to its TileType.
// Unrecognized characters map to Void.
func ParseTile(r rune) TileType {
	switch r {
	case 'S':
		return Start
	case '|':
		return NorthSouth
	case '-':
		return EastWest
	case 'L':
		return NorthEast
	case 'J':
		return NorthWest
	case '7':
		return SouthWest
	case 'F':
		return SouthEast
	default:
		return Void
	}
}

// Rune returns the canonical input character for t.
func (t TileType) Rune() rune {
	if int(t) >= len(runes) {
		return runes[Void]
	}
	return runes[t]
}

// String returns the type name.
func (t TileType) String() string {
	if int(t) >= len(names) {
		return fmt.Sprintf("TileType(%d)", uint8(t))
	}
	return names[t]
}

// IsCorner reports whether t turns through a right angle.
func (t TileType) IsCorner() bool {
	switch t {
	case NorthEast, NorthWest, SouthWest, SouthEast:
		return true
	}
	return false
}

// Opens returns the open directions of t.
func Opens(t TileType) DirectionSet {
	if int(t) >= len(openings) {
		return 0
	}
	return openings[t]
}

// Compatible reports whether tile a and its neighbour b in direction dir
// are joined: a opens toward dir and b opens back toward a.
func Compatible(a, b TileType, dir Direction) bool {
	return Opens(a).Has(dir) && Opens(b).Has(dir.Reverse())
}

// TileFromDirections returns the pipe type opening exactly toward a and b.
// It reports false when a == b or the pair is not a pipe shape.
func TileFromDirections(a, b Direction) (TileType, bool) {
	want := NewDirectionSet(a, b)
	for _, t := range pipeTypes {
		if openings[t] == want {
			return t, true
		}
	}
	return Void, false
}
