// Package pipegrid models a rectangular grid of pipe tiles and the rule
// that decides whether two adjacent tiles are joined by a pipe.
//
// What:
//
//   - TileType is the closed set of pipe orientations (| - L J 7 F),
//     the Start marker (S) and Void (anything else).
//   - Every pipe type opens toward a fixed pair of compass directions;
//     Start opens toward all four (permissive), Void toward none.
//   - Compatible(a, b, dir) holds iff a opens toward dir and b opens back
//     toward dir.Reverse().
//   - Grid is a dense, immutable Coordinate → TileType mapping with a
//     single Start tile. Lookups outside the rectangle return Void.
//
// Why:
//
//   - The connectivity rule is a two-line predicate over a table instead
//     of an exhaustive case analysis per (tile, direction, neighbour).
//   - A dense rectangle lets row scans in package region run to the left
//     edge without special cases.
//
// Complexity:
//
//   - NewGrid:    O(W×H) time and memory.
//   - TileAt:     O(1).
//   - Compatible: O(1).
//
// Options:
//
//   - WithRowPolicy(PadVoid): short rows are padded with Void (default).
//   - WithRowPolicy(Strict):  short rows fail with ErrMalformedRow.
//
// Errors:
//
//   - ErrEmptyGrid:          no rows at all (also matches ErrNoStartTile).
//   - ErrNoStartTile:        no 'S' anywhere in the input.
//   - ErrMultipleStartTiles: more than one 'S'.
//   - ErrMalformedRow:       rows of unequal length under Strict.
//   - ErrOptionViolation:    an invalid Option value.
package pipegrid
