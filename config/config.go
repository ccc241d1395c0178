// Package config loads CLI settings from YAML or TOML files.
//
// Library packages take functional options; this package exists so the
// command line can keep its choices in a file:
//
//	rows: strict        # pad | strict
//	start: infer        # infer | raw
//	log:
//	  level: debug      # debug | info | warn | error
//	  format: json      # text | json
//	output:
//	  format: yaml      # text | json | yaml | toml
//	  ascii: true
//	  image: loop.png   # .png | .bmp | .tif/.tiff
//	  scale: 8
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/region"
)

var (
	// ErrUnknownFormat indicates a config file extension that is neither YAML nor TOML.
	ErrUnknownFormat = errors.New("config: unknown config format")
	// ErrInvalidValue indicates a setting outside its allowed values.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Config is the full CLI configuration.
type Config struct {
	Rows   string       `yaml:"rows" toml:"rows"`
	Start  string       `yaml:"start" toml:"start"`
	Log    LogConfig    `yaml:"log" toml:"log"`
	Output OutputConfig `yaml:"output" toml:"output"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// OutputConfig selects how answers and renders are written.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"`
	ASCII  bool   `yaml:"ascii" toml:"ascii"`
	Image  string `yaml:"image" toml:"image"`
	Scale  int    `yaml:"scale" toml:"scale"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Rows:  "pad",
		Start: "infer",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "text",
			Scale:  4,
		},
	}
}

// Load reads path on top of Default. An empty path returns Default.
// The extension picks the decoder: .yaml/.yml or .toml.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg, err := Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data in the given format ("yaml", "yml" or "toml") on
// top of Default, rejecting unknown keys, and validates the result.
func Parse(data []byte, format string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; keep the defaults.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: parsing yaml: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: parsing toml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func oneOf(field, v string, allowed ...string) error {
	for _, a := range allowed {
		if v == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s=%q, want one of %v", ErrInvalidValue, field, v, allowed)
}

// Validate rejects values outside the allowed sets.
func (c Config) Validate() error {
	return errors.Join(
		oneOf("rows", c.Rows, "pad", "strict"),
		oneOf("start", c.Start, "infer", "raw"),
		oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error"),
		oneOf("log.format", c.Log.Format, "text", "json"),
		oneOf("output.format", c.Output.Format, "text", "json", "yaml", "toml"),
		c.validateScale(),
	)
}

func (c Config) validateScale() error {
	if c.Output.Scale < 1 {
		return fmt.Errorf("%w: output.scale=%d, want >= 1", ErrInvalidValue, c.Output.Scale)
	}
	return nil
}

// RowPolicy maps Rows onto pipegrid.
func (c Config) RowPolicy() pipegrid.RowPolicy {
	if c.Rows == "strict" {
		return pipegrid.Strict
	}
	return pipegrid.PadVoid
}

// StartPolicy maps Start onto region.
func (c Config) StartPolicy() region.StartPolicy {
	if c.Start == "raw" {
		return region.RawStart
	}
	return region.InferStart
}

// LogLevel maps Log.Level onto slog.
func (c Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
