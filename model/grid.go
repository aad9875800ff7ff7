package model

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimension is returned when a grid is built with a non-positive size.
	ErrInvalidDimension = errors.New("model: invalid grid dimension")

	// ErrDimensionMismatch is returned when two grids of different sizes are combined.
	ErrDimensionMismatch = errors.New("model: grid dimension mismatch")
)

// CellReader is the read-only view of a grid handed to renderers.
type CellReader interface {
	Width() int
	Height() int
	Get(x, y int) bool
}

// Grid represents the game board. Its size is fixed once created.
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new grid with the specified dimensions, every cell dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] %dx%d", width, height)
	}
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Set sets a cell to alive (true) or dead (false).
// Coordinates are not checked; out of range access panics.
func (g *Grid) Set(x, y int, alive bool) {
	g.cells[y][x] = alive
}

// Get returns the state of a cell. Out of range access panics.
func (g *Grid) Get(x, y int) bool {
	return g.cells[y][x]
}

// Clear clears all cells
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// CopyFrom overwrites every cell with the contents of other.
func (g *Grid) CopyFrom(other *Grid) error {
	if other.width != g.width || other.height != g.height {
		return errors.Wrapf(ErrDimensionMismatch, "[CopyFrom] %dx%d into %dx%d",
			other.width, other.height, g.width, g.height)
	}
	for y := range g.height {
		copy(g.cells[y], other.cells[y])
	}
	return nil
}

// CountNeighbors counts living neighbors inside the 3x3 window around (x, y).
// The window is clamped to the grid, so edge cells have 5 possible neighbors
// and corner cells 3. The board never wraps.
func (g *Grid) CountNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}
