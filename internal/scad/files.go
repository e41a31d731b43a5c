package scad

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/mbrooker/maze-maker/internal/maze"
	"github.com/mbrooker/maze-maker/internal/telemetry"
)

// Files names the two scripts written for one maze.
type Files struct {
	Maze  string // Path of the maze cylinder script
	Outer string // Path of the sleeve script
}

// Paths returns the script paths for the given base names inside dir:
// <mazeBase>_whole.scad and <outerBase>.scad.
func Paths(dir, mazeBase, outerBase string) Files {
	return Files{
		Maze:  filepath.Join(dir, mazeBase+"_whole.scad"),
		Outer: filepath.Join(dir, outerBase+".scad"),
	}
}

// WriteFiles writes both scripts for g.
func WriteFiles(ctx context.Context, files Files, g maze.Grid, m Model) error {
	tracer := telemetry.Tracer("scad")
	_, span := tracer.Start(ctx, "scad.write")
	defer span.End()

	if err := writeFile(files.Maze, func(f *os.File) error { return Whole(f, g, m) }); err != nil {
		span.RecordError(err)
		return err
	}
	if err := writeFile(files.Outer, func(f *os.File) error { return Outer(f, m, g.Rows(), g.Cols()) }); err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttributes(
		attribute.String("scad.maze_file", files.Maze),
		attribute.String("scad.outer_file", files.Outer),
		attribute.Bool("scad.hollow", m.Hollow),
	)
	Logger().Info("wrote OpenSCAD models",
		zap.String("maze", files.Maze),
		zap.String("outer", files.Outer),
	)
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
