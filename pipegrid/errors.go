package pipegrid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows.
	ErrEmptyGrid = errors.New("pipegrid: input grid must have at least one row")
	// ErrNoStartTile indicates no tile maps to Start.
	ErrNoStartTile = errors.New("pipegrid: no start tile in grid")
	// ErrMultipleStartTiles indicates more than one tile maps to Start.
	ErrMultipleStartTiles = errors.New("pipegrid: more than one start tile in grid")
	// ErrMalformedRow indicates rows of differing lengths under the Strict policy.
	ErrMalformedRow = errors.New("pipegrid: all rows must have the same length")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("pipegrid: invalid option supplied")
)
