package model

import (
	"math/rand"

	"github.com/drewwalton19216801/gameoflife/rules"
)

// Grid represents one generation of the board
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a new all-dead grid with the specified dimensions
func NewGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// NewRandomGrid creates a grid where each cell is independently live with
// the given probability. Values outside [0,1] degenerate to all-dead or
// all-live, which is the natural Bernoulli edge behavior.
func NewRandomGrid(width, height int, probability float64) *Grid {
	g := NewGrid(width, height)
	g.Randomize(probability)
	return g
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Reset resets the grid to new dimensions
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Resize cells if needed
	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			// Clear existing cells
			for j := range g.cells[i] {
				g.cells[i][j] = false
			}
		}
	}
}

// Clear clears all cells
func (g *Grid) Clear() {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y][x] = false
		}
	}
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[y][x] = alive
	}
}

// Get returns the state of a cell; positions outside the grid read as dead
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[y][x]
}

// CountLiveNeighbors counts the live cells in the Moore neighborhood of
// (x, y). Neighbors outside the grid bounds contribute zero; there is no
// toroidal wrapping.
func (g *Grid) CountLiveNeighbors(x, y int) int {
	count := 0

	// Clamp the 3x3 window to the grid once instead of bounds-checking
	// every neighbor lookup
	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

// Advance computes the next generation synchronously: every cell of the
// result depends only on the receiver, so the update has no read/write
// hazards. The result is a fresh grid of identical dimensions, drawn from
// the pool when one is provided.
func (g *Grid) Advance(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.width, g.height)
	} else {
		next = NewGrid(g.width, g.height)
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if rules.ApplyConwayRules(g.CountLiveNeighbors(x, y), g.cells[y][x]) {
				next.cells[y][x] = true
			}
		}
	}

	return next
}

// Population returns the total number of living cells
func (g *Grid) Population() (count int) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Randomize fills the grid with random living cells at the given density
func (g *Grid) Randomize(density float64) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.Set(x, y, rand.Float64() < density)
		}
	}
}

// AddBorderWall forces the outermost rows and columns live, forming a
// fixed wall around the playing field
func (g *Grid) AddBorderWall() {
	for x := 0; x < g.width; x++ {
		g.Set(x, 0, true)
		g.Set(x, g.height-1, true)
	}
	for y := 0; y < g.height; y++ {
		g.Set(0, y, true)
		g.Set(g.width-1, y, true)
	}
}

// Equal reports whether both grids have identical dimensions and cell states
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}
