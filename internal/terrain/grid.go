// Package terrain implements the per-tile elevation data model: heightfield
// resampling onto canonical grid resolutions, adjacency detection between
// tile footprints, and edge stitching across adjacent tiles.
package terrain

import "fmt"

// Grid is a rectangular row-major float32 sample grid. It is the input
// format for resampling: arbitrary caller-supplied heights at arbitrary
// resolution, in absolute world units.
type Grid struct {
	width  int
	length int
	values []float32
}

// NewGrid allocates a length×width grid of zero heights.
// length is the X axis sample count, width the Z axis sample count.
func NewGrid(length, width int) *Grid {
	return &Grid{
		width:  width,
		length: length,
		values: make([]float32, length*width),
	}
}

// GridFromRows builds a grid from nested slices indexed [x][z].
// All rows must have equal length.
func GridFromRows(rows [][]float32) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid rows are empty")
	}
	g := NewGrid(len(rows), len(rows[0]))
	for x, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("grid row %d has %d samples, want %d", x, len(row), g.width)
		}
		copy(g.values[x*g.width:(x+1)*g.width], row)
	}
	return g, nil
}

// Length returns the X axis sample count.
func (g *Grid) Length() int { return g.length }

// Width returns the Z axis sample count.
func (g *Grid) Width() int { return g.width }

// At returns the sample at (x, z). Indices must be in range.
func (g *Grid) At(x, z int) float32 {
	return g.values[x*g.width+z]
}

// Set writes the sample at (x, z). Indices must be in range.
func (g *Grid) Set(x, z int, v float32) {
	g.values[x*g.width+z] = v
}

// Rows returns the grid as nested slices indexed [x][z]. The result does
// not alias the grid's storage.
func (g *Grid) Rows() [][]float32 {
	rows := make([][]float32, g.length)
	for x := range rows {
		rows[x] = make([]float32, g.width)
		copy(rows[x], g.values[x*g.width:(x+1)*g.width])
	}
	return rows
}
