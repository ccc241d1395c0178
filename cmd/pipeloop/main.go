// Command pipeloop solves a pipe-maze grid: it prints the number of steps
// from 'S' to the farthest point of the loop and the number of tiles the
// loop encloses.
//
// Usage:
//
//	pipeloop [flags] <input-file>
//
// Flags override values from the --config file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop"
	"github.com/katalvlaran/pipeloop/config"
	"github.com/katalvlaran/pipeloop/input"
	"github.com/katalvlaran/pipeloop/render"
	"github.com/katalvlaran/pipeloop/report"
	"github.com/katalvlaran/pipeloop/solver"
)

// errUsage marks command-line mistakes (exit status 2).
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, "pipeloop:", err)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, "pipeloop:", err)
		os.Exit(1)
	}
}

// flags holds the raw command-line values before they are merged into a
// config.Config.
type flags struct {
	cfgPath  string
	format   string
	ascii    bool
	imgPath  string
	scale    int
	strict   bool
	rawStart bool
	verbose  bool
	watch    bool
}

// run parses args, solves the input once, and in watch mode keeps
// re-solving until ctx is done.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "pipeloop [flags] <input-file>",
		Short: "Find the closed pipe loop and count the tiles it encloses",
		Long: `Trace the loop through 'S' in a pipe-maze grid, print the distance to
its farthest point and the number of enclosed tiles.

Examples:
  pipeloop input.txt
  pipeloop --ascii --image loop.png input.txt
  pipeloop --config pipeloop.yaml --format json --watch input.txt`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("%w: expected exactly one input file, got %d", errUsage, len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args[0], f)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	fl := cmd.Flags()
	fl.StringVarP(&f.cfgPath, "config", "c", "", "YAML or TOML config file")
	fl.StringVarP(&f.format, "format", "f", "", "output format: text, json, yaml or toml")
	fl.BoolVar(&f.ascii, "ascii", false, "print the classified grid")
	fl.StringVarP(&f.imgPath, "image", "o", "", "write a render to this .png/.bmp/.tiff file")
	fl.IntVar(&f.scale, "scale", 0, "pixels per glyph pixel in the image render")
	fl.BoolVar(&f.strict, "strict", false, "reject rows of unequal length")
	fl.BoolVar(&f.rawStart, "raw-start", false, "scan 'S' as-is instead of its inferred shape")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	fl.BoolVarP(&f.watch, "watch", "w", false, "re-solve whenever the input file changes")

	return cmd
}

// runSolve merges flags over the config file, then solves path once or,
// with --watch, on every change.
func runSolve(cmd *cobra.Command, path string, f flags) error {
	ctx, stdout := cmd.Context(), cmd.OutOrStdout()
	cfg, err := config.Load(f.cfgPath)
	if err != nil {
		return err
	}
	// Explicit flags win over the file.
	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fl.Changed("ascii") {
		cfg.Output.ASCII = f.ascii
	}
	if fl.Changed("image") {
		cfg.Output.Image = f.imgPath
	}
	if fl.Changed("scale") {
		cfg.Output.Scale = f.scale
	}
	if f.strict {
		cfg.Rows = "strict"
	}
	if f.rawStart {
		cfg.Start = "raw"
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	pipeloop.SetLogger(newLogger(cfg, cmd.ErrOrStderr()))

	if err := solveFile(ctx, path, cfg, stdout); err != nil {
		return err
	}
	if !f.watch {
		return nil
	}
	return watchFile(ctx, path, func() {
		if err := solveFile(ctx, path, cfg, stdout); err != nil {
			pipeloop.Logger().Error("pipeloop: solve failed", "path", path, "err", err)
		}
	})
}

// newLogger builds the slog handler selected by cfg.
func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// solveFile reads, solves and presents one input file. Nothing is written
// to stdout unless the whole solve succeeds.
func solveFile(ctx context.Context, path string, cfg config.Config, stdout io.Writer) error {
	rows, err := input.ReadFile(path)
	if err != nil {
		return err
	}
	res, err := solver.Solve(ctx, rows,
		solver.WithRowPolicy(cfg.RowPolicy()),
		solver.WithStartPolicy(cfg.StartPolicy()),
	)
	if err != nil {
		return err
	}
	if cfg.Output.Image != "" {
		if err := render.SaveImage(cfg.Output.Image, res.Regions, cfg.Output.Scale); err != nil {
			return err
		}
		pipeloop.Logger().Debug("pipeloop: image written", "path", cfg.Output.Image)
	}
	if cfg.Output.ASCII {
		if err := render.ASCII(stdout, res.Regions); err != nil {
			return err
		}
	}
	return report.New(res).Encode(stdout, cfg.Output.Format)
}
