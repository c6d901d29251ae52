package life

import "aqualife/internal/core"

// Accumulate adds one to the neighbor counter of each of the 8 toroidal
// neighbors of every live cell. Alive flags are not modified, so the pass
// always reads the classification the generation started with.
//
// The border columns and rows are visited first with wrapped addressing, then
// the interior with direct indexing. c is sampled after every border row,
// border column and interior row; when it reports cancellation the pass stops
// and Accumulate returns false, leaving the counters partially applied.
func (w *World) Accumulate(c core.Canceller) bool {
	if c == nil {
		c = core.Never
	}
	g := w.grid
	rows, cols := g.H, g.W

	for row := 0; row < rows; row++ {
		w.addWrapped(row, 0)
		if cols > 1 {
			w.addWrapped(row, cols-1)
		}
		if c.Cancelled() {
			return false
		}
	}

	for col := 1; col < cols-1; col++ {
		w.addWrapped(0, col)
		if rows > 1 {
			w.addWrapped(rows-1, col)
		}
		if c.Cancelled() {
			return false
		}
	}

	cells := g.Cells()
	for row := 1; row < rows-1; row++ {
		base := row * cols
		for col := 1; col < cols-1; col++ {
			if !cells[base+col].Alive {
				continue
			}
			up, down := base-cols, base+cols
			cells[up+col-1].Neighbors++
			cells[up+col].Neighbors++
			cells[up+col+1].Neighbors++
			cells[base+col-1].Neighbors++
			cells[base+col+1].Neighbors++
			cells[down+col-1].Neighbors++
			cells[down+col].Neighbors++
			cells[down+col+1].Neighbors++
		}
		if c.Cancelled() {
			return false
		}
	}
	return true
}

// addWrapped credits the neighbors of a border cell if it is alive.
func (w *World) addWrapped(row, col int) {
	g := w.grid
	if !g.At(col, row).Alive {
		return
	}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			x, y := g.Wrap(col+dc, row+dr)
			g.Ptr(x, y).Neighbors++
		}
	}
}
