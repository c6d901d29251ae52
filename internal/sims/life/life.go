// Package life implements Conway's Game of Life on a fixed toroidal grid,
// advancing generations in place with an accumulate-then-decode pass.
package life

import (
	"aqualife/internal/core"
)

const (
	// Rows is the height of the reference grid.
	Rows = 21
	// Cols is the width of the reference grid.
	Cols = 40
	// LifeNum is the base number of seed draws; a run seeds between LifeNum
	// and 2*LifeNum-1 draws.
	LifeNum = 80
)

// Cell holds the alive flag entering the current generation and the number
// of live neighbors accumulated for it so far.
type Cell struct {
	Alive     bool
	Neighbors uint8
}

// Change records a cell whose alive state flipped during a generation.
type Change struct {
	Row, Col int
	Alive    bool
}

// World is the complete simulation state for one grid.
type World struct {
	grid       *core.Grid[Cell]
	generation int
	population int
	changes    []Change
}

// New returns a World of the given dimensions with every cell dead.
func New(rows, cols int) *World {
	w := &World{}
	w.Init(rows, cols)
	return w
}

// Init clears the world to all-dead cells with zero counters, allocating
// only when the dimensions differ from the current grid.
func (w *World) Init(rows, cols int) {
	if w.grid == nil || w.grid.W != max(cols, 1) || w.grid.H != max(rows, 1) {
		w.grid = core.NewGrid[Cell](cols, rows)
	} else {
		w.grid.Clear()
	}
	w.generation = 0
	w.population = 0
	w.changes = w.changes[:0]
}

// Rows returns the grid height.
func (w *World) Rows() int { return w.grid.H }

// Cols returns the grid width.
func (w *World) Cols() int { return w.grid.W }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// At returns the cell at (row, col). Coordinates must be in range.
func (w *World) At(row, col int) Cell { return w.grid.At(col, row) }

// Set stores c at (row, col). Coordinates must be in range. Population is
// not updated; call Recount after hand-building a pattern.
func (w *World) Set(row, col int, c Cell) { w.grid.Set(col, row, c) }

// Alive reports whether the cell at (row, col) is alive.
func (w *World) Alive(row, col int) bool { return w.grid.At(col, row).Alive }

// Generation returns the number of generations advanced since the last Init.
func (w *World) Generation() int { return w.generation }

// Population returns the number of live cells.
func (w *World) Population() int { return w.population }

// Changes returns the cells that flipped during the last Decode. The slice is
// reused by the next generation.
func (w *World) Changes() []Change { return w.changes }

// SeedCount draws the number of seed placements for a fresh run.
func SeedCount(rng *core.RNG) int {
	return rng.IntN(LifeNum) + LifeNum
}

// Seed marks count uniformly drawn positions alive. Draws are independent and
// may repeat, so the resulting population can be lower than count. Neighbor
// counters are left untouched.
func (w *World) Seed(rng *core.RNG, count int) {
	for i := 0; i < count; i++ {
		row := rng.IntN(w.grid.H)
		col := rng.IntN(w.grid.W)
		w.grid.Ptr(col, row).Alive = true
	}
	w.Recount()
}

// Recount recomputes the population from the alive flags.
func (w *World) Recount() int {
	n := 0
	for _, c := range w.grid.Cells() {
		if c.Alive {
			n++
		}
	}
	w.population = n
	return n
}
