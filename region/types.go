package region

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("region: grid is nil")
	// ErrLoopNil is returned if the loop set is nil.
	ErrLoopNil = errors.New("region: loop set is nil")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("region: invalid option supplied")
)

// StartPolicy decides what the start tile looks like in the filtered view.
type StartPolicy int

const (
	// InferStart substitutes the pipe shape recovered from the start
	// tile's two loop neighbours.
	InferStart StartPolicy = iota
	// RawStart keeps 'S'. It is scanned as a corner that never pairs, so
	// rows through the start tile may be misclassified.
	RawStart
)

// String returns "infer" or "raw".
func (p StartPolicy) String() string {
	switch p {
	case InferStart:
		return "infer"
	case RawStart:
		return "raw"
	default:
		return fmt.Sprintf("StartPolicy(%d)", int(p))
	}
}

// Label is the classification of one coordinate.
type Label int

const (
	OutOfBounds Label = iota
	Loop
	Inside
	Outside
)

// String returns the label name.
func (l Label) String() string {
	switch l {
	case OutOfBounds:
		return "out-of-bounds"
	case Loop:
		return "loop"
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	default:
		return fmt.Sprintf("Label(%d)", int(l))
	}
}

// Option configures Classify.
type Option func(*Options)

// Options holds classification parameters.
type Options struct {
	StartPolicy StartPolicy

	err error
}

// DefaultOptions returns Options with StartPolicy=InferStart.
func DefaultOptions() Options {
	return Options{StartPolicy: InferStart}
}

// WithStartPolicy selects how the start tile is scanned.
func WithStartPolicy(p StartPolicy) Option {
	return func(o *Options) {
		switch p {
		case InferStart, RawStart:
			o.StartPolicy = p
		default:
			o.err = fmt.Errorf("%w: unknown start policy %d", ErrOptionViolation, int(p))
		}
	}
}

// Regions is the immutable outcome of Classify.
// LoopCount + Interior.Len() + ExteriorCount == Width × Height.
type Regions struct {
	Interior      pipegrid.CoordinateSet
	LoopCount     int
	ExteriorCount int
	// StartTile is what the start tile became in the filtered view.
	StartTile pipegrid.TileType

	width, height int
	view          [][]pipegrid.TileType
}
