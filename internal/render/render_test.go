package render

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbrooker/maze-maker/internal/maze"
)

func TestTextUngenerated(t *testing.T) {
	m := maze.New(1, 2)
	ends := maze.Endpoints{Start: maze.Position{Row: 0, Col: 0}, End: maze.Position{Row: 0, Col: 1}}

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, m, ends, Options{}))

	want := "█████\n" +
		"█S█E█\n" +
		"█████\n"
	assert.Equal(t, want, buf.String())
}

func TestTextCarved(t *testing.T) {
	m := maze.New(1, 3)
	m.CarvePassage(maze.Position{Row: 0, Col: 0}, maze.Position{Row: 0, Col: 2})
	m.CarvePassage(maze.Position{Row: 0, Col: 0}, maze.Position{Row: 0, Col: 1})
	ends := maze.Endpoints{Start: maze.Position{Row: 0, Col: 1}, End: maze.Position{Row: 0, Col: 2}}

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, m, ends, Options{Route: m.Solve(ends.Start, ends.End)}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "•••S█E•", lines[1])
}

func TestTextGeneratedDimensions(t *testing.T) {
	m := maze.New(4, 5)
	ends := m.Generate(context.Background(), rand.New(rand.NewSource(3)))

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, m, ends, Options{}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, m.StorageRows())
	for _, line := range lines {
		assert.Equal(t, m.StorageCols(), len([]rune(line)))
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "S"))
	assert.Equal(t, 1, strings.Count(buf.String(), "E"))
}

func TestTextColor(t *testing.T) {
	m := maze.New(2, 2)
	ends := m.Generate(context.Background(), rand.New(rand.NewSource(1)))

	var buf bytes.Buffer
	require.NoError(t, Text(&buf, m, ends, Options{Color: true}))
	assert.Contains(t, buf.String(), "S")
	assert.Contains(t, buf.String(), "E")
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Header(&buf, maze.New(10, 20), false))
	assert.True(t, strings.HasPrefix(buf.String(), "Wilson's Algorithm Maze on a Cylinder (10x20):\n"))
	assert.Contains(t, buf.String(), "wrap around")
}
