package astar

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Walkable is the marker of a cell that can be entered. Any other byte blocks.
const Walkable = '1'

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a fixed row-major walkability map. It is read-only once built.
type Grid struct {
	markers []byte
	width   int
	height  int
}

// NewGrid builds a grid from width*height single-byte markers in row-major order.
func NewGrid(markers string, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidGrid, "dimensions %dx%d", width, height)
	}
	// divide rather than multiply so huge dimensions cannot wrap around
	if len(markers)%width != 0 || len(markers)/width != height {
		return nil, errors.Wrapf(ErrInvalidGrid, "got %d markers for %dx%d", len(markers), width, height)
	}
	return &Grid{markers: []byte(markers), width: width, height: height}, nil
}

// ParseRows builds a grid from equally long rows, top row first.
func ParseRows(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidGrid, "no rows")
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidGrid, "row %d has width %d, want %d", i, len(row), width)
		}
	}
	return NewGrid(strings.Join(rows, ""), width, len(rows))
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }
func (g *Grid) Len() int    { return len(g.markers) }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Walkable reports whether c is inside the grid and not blocked.
func (g *Grid) Walkable(c Cell) bool {
	return g.InBounds(c) && g.markers[g.index(c)] == Walkable
}

// ToIndex converts coordinates to a linear index.
func (g *Grid) ToIndex(x, y int) (int, error) {
	c := Cell{X: x, Y: y}
	if !g.InBounds(c) {
		return 0, errors.Wrapf(ErrOutOfBounds, "%v in %dx%d grid", c, g.width, g.height)
	}
	return g.index(c), nil
}

// ToCoords converts a linear index back to coordinates.
func (g *Grid) ToCoords(index int) (Cell, error) {
	if index < 0 || index >= len(g.markers) {
		return Cell{}, errors.Wrapf(ErrOutOfBounds, "index %d in %dx%d grid", index, g.width, g.height)
	}
	return g.cell(index), nil
}

func (g *Grid) index(c Cell) int {
	return c.Y*g.width + c.X
}

func (g *Grid) cell(index int) Cell {
	return Cell{X: index % g.width, Y: index / g.width}
}

// Neighbors returns the walkable axis-aligned neighbours of c in the order
// left, right, up, down. Candidates off the grid or blocked are dropped.
func (g *Grid) Neighbors(c Cell) []Cell {
	candidates := [4]Cell{
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
	}
	neighbors := make([]Cell, 0, len(candidates))
	for _, n := range candidates {
		if g.Walkable(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// Render draws the grid one row per line with '.' along path, '+' at start
// and 'X' at end. Cells outside the grid are ignored.
func (g *Grid) Render(start, end Cell, path []Cell) string {
	out := make([]byte, len(g.markers))
	copy(out, g.markers)
	mark := func(c Cell, b byte) {
		if g.InBounds(c) {
			out[g.index(c)] = b
		}
	}
	for _, c := range path {
		mark(c, '.')
	}
	mark(start, '+')
	mark(end, 'X')

	var sb strings.Builder
	sb.Grow(len(out) + g.height)
	for row := 0; row < g.height; row++ {
		sb.Write(out[row*g.width : (row+1)*g.width])
		sb.WriteByte('\n')
	}
	return sb.String()
}
