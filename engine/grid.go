package engine

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyGrid   = errors.New("grid has no cells")
	ErrRaggedGrid  = errors.New("grid rows differ in length")
	ErrBadCellSize = errors.New("cell size must be positive")
)

// Cell is the occupancy of one grid square.
type Cell uint8

const (
	Empty Cell = iota
	Wall
)

// Grid is an immutable occupancy map. Everything outside it counts as wall.
type Grid struct {
	width, height int
	cellSize      float64
	cells         []Cell
}

// NewGrid builds a grid from row-major cell codes, 0 meaning empty and any
// other value meaning wall. codes[y][x] addresses column x of row y.
func NewGrid(codes [][]int, cellSize float64) (*Grid, error) {
	if cellSize <= 0 || math.IsNaN(cellSize) || math.IsInf(cellSize, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, cellSize)
	}
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width, height := len(codes[0]), len(codes)
	g := &Grid{
		width:    width,
		height:   height,
		cellSize: cellSize,
		cells:    make([]Cell, width*height),
	}
	for y, row := range codes {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, y, len(row), width)
		}
		for x, code := range row {
			if code != 0 {
				g.cells[y*width+x] = Wall
			}
		}
	}
	return g, nil
}

func (g *Grid) Width() int        { return g.width }
func (g *Grid) Height() int       { return g.height }
func (g *Grid) CellSize() float64 { return g.cellSize }

func (g *Grid) InBounds(cx, cy int) bool {
	return cx >= 0 && cy >= 0 && cx < g.width && cy < g.height
}

// IsWall reports whether the cell is solid. Out of bounds is always solid.
func (g *Grid) IsWall(cx, cy int) bool {
	if !g.InBounds(cx, cy) {
		return true
	}
	return g.cells[cy*g.width+cx] == Wall
}

// CellOf maps a world position to the grid index containing it.
func (g *Grid) CellOf(x, y float64) (int, int) {
	return int(math.Floor(x / g.cellSize)), int(math.Floor(y / g.cellSize))
}

// IsWallAt is the collision query for world coordinates.
func (g *Grid) IsWallAt(x, y float64) bool {
	return g.IsWall(g.CellOf(x, y))
}

// Codes returns a copy of the grid as 0/1 cell codes.
func (g *Grid) Codes() [][]int {
	codes := make([][]int, g.height)
	for y := range codes {
		codes[y] = make([]int, g.width)
		for x := range codes[y] {
			if g.cells[y*g.width+x] == Wall {
				codes[y][x] = 1
			}
		}
	}
	return codes
}
