// Package report presents the answers of a solver run as text, JSON,
// YAML or TOML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop/solver"
)

// ErrUnknownFormat indicates an output format other than text, json, yaml or toml.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Report is the serializable summary of one run.
type Report struct {
	RunID      string `json:"run_id" yaml:"run_id" toml:"run_id"`
	Width      int    `json:"width" yaml:"width" toml:"width"`
	Height     int    `json:"height" yaml:"height" toml:"height"`
	Start      [2]int `json:"start" yaml:"start,flow" toml:"start"`
	StartTile  string `json:"start_tile" yaml:"start_tile" toml:"start_tile"`
	LoopLength int    `json:"loop_length" yaml:"loop_length" toml:"loop_length"`
	HalfLength int    `json:"half_length" yaml:"half_length" toml:"half_length"`
	Interior   int    `json:"interior" yaml:"interior" toml:"interior"`
	Exterior   int    `json:"exterior" yaml:"exterior" toml:"exterior"`
	ElapsedMS  int64  `json:"elapsed_ms" yaml:"elapsed_ms" toml:"elapsed_ms"`
}

// New summarizes res under a fresh random run ID.
func New(res *solver.Result) Report {
	s := res.Grid.Start()
	return Report{
		RunID:      uuid.NewString(),
		Width:      res.Grid.Width(),
		Height:     res.Grid.Height(),
		Start:      [2]int{s.X, s.Y},
		StartTile:  string(res.Regions.StartTile.Rune()),
		LoopLength: res.Loop.Len(),
		HalfLength: res.HalfLength,
		Interior:   res.Interior,
		Exterior:   res.Regions.ExteriorCount,
		ElapsedMS:  res.Elapsed.Milliseconds(),
	}
}

// Encode writes r to w in format. The text format prints only the two
// answers, one per line.
func (r Report) Encode(w io.Writer, format string) error {
	switch format {
	case "", "text":
		_, err := fmt.Fprintf(w, "Longest distance is %d\nInner nodes %d\n", r.HalfLength, r.Interior)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
