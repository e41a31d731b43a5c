// Package scad writes OpenSCAD scripts that model a maze cut into a cylinder
// and the sleeve that slides over it.
package scad

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/mbrooker/maze-maker/internal/maze"
)

// Model describes the physical cylinder a maze is wrapped around.
type Model struct {
	Height        float64
	Circumference float64
	Hollow        bool   // Remove the core of the maze cylinder
	Comment       string // Optional first-line comment, e.g. a run ID
}

// Radius returns the cylinder radius.
func (m Model) Radius() float64 {
	return m.Circumference / (2 * math.Pi)
}

// num formats a float the shortest way that round-trips.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Whole writes the maze cylinder: every open storage position is cut into the
// surface as a segment, column index mapped to angle and row index to height.
func Whole(w io.Writer, g maze.Grid, m Model) error {
	rows, cols := g.StorageRows(), g.StorageCols()
	radius := m.Radius()
	segX := m.Circumference / float64(cols)
	segZ := m.Height / float64(rows)
	height := segZ * float64(rows)

	bw := bufio.NewWriter(w)
	writeComment(bw, m.Comment)

	fmt.Fprintf(bw, "radius = %s;\n", num(radius))
	fmt.Fprintf(bw, "seg_scale_x = %s;\n", num(segX))
	fmt.Fprintf(bw, "seg_scale_z = %s;\n", num(segZ))
	fmt.Fprintf(bw, "height = %s;\n", num(height))
	fmt.Fprintf(bw, "rows = %d;\n", rows)
	fmt.Fprintf(bw, "cols = %d;\n", cols)
	bw.WriteString("\n")

	bw.WriteString("// Maze data: [row, col] pairs for path cells\n")
	bw.WriteString("maze_paths = [\n")
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if g.At(r, c) == maze.Path {
				fmt.Fprintf(bw, "  [%d, %d],\n", r, c)
			}
		}
	}
	bw.WriteString("];\n\n")

	bw.WriteString("union() {\n")
	bw.WriteString("  difference() {\n")
	bw.WriteString("    cylinder(r=radius, h=height, $fn=360);\n")
	bw.WriteString("\n")
	bw.WriteString("    // Carve out path segments\n")
	bw.WriteString("    for (path = maze_paths) {\n")
	bw.WriteString("      row = path[0];\n")
	bw.WriteString("      col = path[1];\n")
	bw.WriteString("      angle = 360 * col / cols;\n")
	bw.WriteString("      z_pos = row * seg_scale_z;\n")
	bw.WriteString("\n")
	bw.WriteString("      rotate([0, 0, angle])\n")
	bw.WriteString("        translate([radius - seg_scale_x * 0.45, -seg_scale_x / 2, z_pos])\n")
	bw.WriteString("          cube([seg_scale_x * 1.01, seg_scale_x, seg_scale_z * 1.01]);\n")
	bw.WriteString("    }\n")
	if m.Hollow {
		bw.WriteString("    cylinder(r=radius-seg_scale_x, h=height+0.1, $fn=360);\n")
	}
	bw.WriteString("  }\n")
	bw.WriteString("\n")
	bw.WriteString("  // Base\n")
	bw.WriteString("  translate([0, 0, -height * 0.05])\n")
	bw.WriteString("    cylinder(r=radius * 1.1, h=height * 0.05, $fn=360);\n")
	bw.WriteString("}\n")

	return bw.Flush()
}

// Outer writes the sleeve: a hollow cylinder with clearance over the maze,
// a base and a tooth on the inner wall near the top that rides in the maze.
func Outer(w io.Writer, m Model, rows, cols int) error {
	radius := m.Radius()
	inner := radius + 0.2
	outer := math.Max(radius*1.1, inner+1.2)
	segX := m.Circumference / float64(cols)
	segZ := m.Height / float64(rows)

	bw := bufio.NewWriter(w)
	writeComment(bw, m.Comment)

	fmt.Fprintf(bw, "inner_radius = %s;\n", num(inner))
	fmt.Fprintf(bw, "outer_radius = %s;\n", num(outer))
	fmt.Fprintf(bw, "height = %s;\n", num(m.Height))
	fmt.Fprintf(bw, "seg_scale_x = %s;\n", num(segX))
	fmt.Fprintf(bw, "seg_scale_z = %s;\n", num(segZ))
	bw.WriteString("\n")

	bw.WriteString("union() {\n")
	bw.WriteString("  difference() {\n")
	bw.WriteString("    cylinder(r=outer_radius, h=height, $fn=360);\n")
	bw.WriteString("    cylinder(r=inner_radius, h=height * 1.01, $fn=360);\n")
	bw.WriteString("  }\n")
	bw.WriteString("  translate([0, 0, -height * 0.05])\n")
	bw.WriteString("    cylinder(r=outer_radius * 1.1, h=height * 0.05, $fn=360);\n")
	bw.WriteString("  // Tooth on outer wall at top\n")
	bw.WriteString("  translate([- outer_radius + seg_scale_x * 0.35, 0, height - seg_scale_z * 0.45])\n")
	bw.WriteString("   scale([seg_scale_x, seg_scale_x, seg_scale_z])\n")
	bw.WriteString("    rotate([0, 90, 0])\n")
	bw.WriteString("      cylinder(r1=0.30, r2=0.3 * 0.8, h=0.30, $fn=36);\n")
	bw.WriteString("}\n")

	return bw.Flush()
}

func writeComment(bw *bufio.Writer, comment string) {
	if comment != "" {
		fmt.Fprintf(bw, "// %s\n", comment)
	}
}
