package life

import (
	"fmt"

	"aqualife/internal/core"
)

// Next applies Conway's rule to a cell's alive flag and neighbor count.
func Next(alive bool, neighbors uint8) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

// Decode applies the rule to every cell after a full accumulation pass. Each
// cell is rewritten with its new alive flag and a zero counter, the population
// is recomputed and every flipped cell is recorded in Changes.
//
// A counter above 8 means accumulation ran twice without a decode and panics.
func (w *World) Decode() {
	w.changes = w.changes[:0]
	cols := w.grid.W
	cells := w.grid.Cells()
	pop := 0
	for i, c := range cells {
		if c.Neighbors > 8 {
			panic(fmt.Sprintf("life: cell (%d,%d) has %d neighbors", i/cols, i%cols, c.Neighbors))
		}
		next := Next(c.Alive, c.Neighbors)
		if next != c.Alive {
			w.changes = append(w.changes, Change{Row: i / cols, Col: i % cols, Alive: next})
		}
		if next {
			pop++
		}
		cells[i] = Cell{Alive: next}
	}
	w.population = pop
}

// Step advances the world by one generation. It returns false if c cancelled
// the accumulation pass, in which case the world must be reseeded before it is
// stepped again.
func (w *World) Step(c core.Canceller) bool {
	if !w.Accumulate(c) {
		return false
	}
	w.Decode()
	w.generation++
	return true
}
