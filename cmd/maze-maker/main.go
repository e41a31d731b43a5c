// Package main is the entry point for maze-maker.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/mbrooker/maze-maker/internal/config"
	"github.com/mbrooker/maze-maker/internal/maze"
	"github.com/mbrooker/maze-maker/internal/presets"
	"github.com/mbrooker/maze-maker/internal/render"
	"github.com/mbrooker/maze-maker/internal/scad"
	"github.com/mbrooker/maze-maker/internal/telemetry"
	"github.com/mbrooker/maze-maker/internal/viewer"
)

// options are the flags that are not part of config.Config.
type options struct {
	preset  string
	outDir  string
	view    bool
	route   bool
	noColor bool
	noFiles bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	cfg, opts, err := parseFlags(cfg, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()
	maze.SetLogger(log.Named("maze"))
	scad.SetLogger(log.Named("scad"))

	seed := cfg.ResolveSeed()
	runInfo := telemetry.NewRun(seed, cfg.Rows, cfg.Cols)
	log = log.With(zap.String("run_id", runInfo.ID))

	ctx := context.Background()
	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx, runInfo)
		if err != nil {
			// Not fatal - the maze is still generated without traces
			log.Warn("telemetry setup failed", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Warn("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	tracer := telemetry.Tracer("cli")
	ctx, span := tracer.Start(ctx, "maze.run")
	defer span.End()

	m := maze.New(cfg.Rows, cfg.Cols)
	ends := m.Generate(ctx, rand.New(rand.NewSource(seed)))
	log.Info("generated maze",
		zap.Int("rows", cfg.Rows),
		zap.Int("cols", cfg.Cols),
		zap.Int64("seed", seed),
	)

	solvable, err := verify(ctx, m, ends)
	if err != nil {
		return err
	}

	if opts.view {
		if err := view(ctx, m, ends); err != nil {
			return err
		}
	} else {
		color := !opts.noColor && term.IsTerminal(int(os.Stdout.Fd()))
		if err := printMaze(os.Stdout, m, ends, solvable, render.Options{Color: color}, opts.route); err != nil {
			return err
		}
	}

	if opts.noFiles {
		return nil
	}
	files := scad.Paths(opts.outDir, cfg.MazeFile, cfg.OuterFile)
	model := scad.Model{
		Height:        cfg.Height,
		Circumference: cfg.Circumference,
		Hollow:        cfg.Hollow,
		Comment:       fmt.Sprintf("maze-maker run %s seed %d (%dx%d)", runInfo.ID, seed, cfg.Rows, cfg.Cols),
	}
	return scad.WriteFiles(ctx, files, m, model)
}

// printMaze writes the console rendering, optionally with the solution route marked.
func printMaze(w io.Writer, m *maze.Maze, ends maze.Endpoints, solvable bool, ropts render.Options, route bool) error {
	if err := render.Header(w, m, ropts.Color); err != nil {
		return err
	}
	if route {
		ropts.Route = m.Solve(ends.Start, ends.End)
	}
	if err := render.Text(w, m, ends, ropts); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nMaze is solvable: %t\n", solvable)
	return err
}

// view runs the interactive viewer and restores the terminal before returning.
func view(ctx context.Context, m *maze.Maze, ends maze.Endpoints) error {
	v, err := viewer.New(m, ends)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer v.Close()
	return v.Run(ctx)
}

// verify checks start-to-end reachability and the spanning-tree shape.
func verify(ctx context.Context, m *maze.Maze, ends maze.Endpoints) (bool, error) {
	_, span := telemetry.Tracer("cli").Start(ctx, "maze.verify")
	defer span.End()

	solvable := m.CanSolve(ends.Start, ends.End)
	span.SetAttributes(attribute.Bool("maze.solvable", solvable))
	if err := m.Audit(); err != nil {
		span.RecordError(err)
		return solvable, fmt.Errorf("generated maze failed audit: %w", err)
	}
	return solvable, nil
}

// parseFlags overlays command-line flags on cfg. Shape flags given explicitly
// win over a preset; a preset wins over the environment.
func parseFlags(cfg config.Config, args []string) (config.Config, options, error) {
	var opts options
	fs := flag.NewFlagSet("maze-maker", flag.ContinueOnError)

	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "Number of rows in the maze")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "Number of columns in the maze")
	fs.Float64Var(&cfg.Height, "height", cfg.Height, "Height of the cylinder")
	fs.Float64Var(&cfg.Circumference, "circumference", cfg.Circumference, "Circumference of the cylinder")
	fs.StringVar(&cfg.MazeFile, "maze-file", cfg.MazeFile, "Base filename for the maze output")
	fs.StringVar(&cfg.OuterFile, "outer-file", cfg.OuterFile, "Base filename for the outer cylinder output")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = random)")
	fs.BoolVar(&cfg.Hollow, "hollow", cfg.Hollow, "Hollow out the maze cylinder")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.preset, "preset", "", "Named shape preset")
	fs.StringVar(&opts.outDir, "out-dir", ".", "Directory for OpenSCAD output")
	fs.BoolVar(&opts.view, "view", false, "Open the interactive terminal viewer")
	fs.BoolVar(&opts.route, "route", false, "Mark the solution route in console output")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	fs.BoolVar(&opts.noFiles, "no-files", false, "Skip writing OpenSCAD files")

	if err := fs.Parse(args); err != nil {
		return cfg, opts, err
	}
	if opts.preset == "" {
		return cfg, opts, nil
	}

	registry, err := presets.LoadRegistry()
	if err != nil {
		return cfg, opts, err
	}
	p, err := registry.Get(opts.preset)
	if err != nil {
		return cfg, opts, fmt.Errorf("%w (have %s)", err, strings.Join(registry.IDs(), ", "))
	}

	explicit := p.Apply(cfg)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			explicit.Rows = cfg.Rows
		case "cols":
			explicit.Cols = cfg.Cols
		case "height":
			explicit.Height = cfg.Height
		case "circumference":
			explicit.Circumference = cfg.Circumference
		}
	})
	return explicit, opts, nil
}

// newLogger builds a console logger writing to stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = lvl
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}
