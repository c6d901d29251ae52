package render

import "aqualife/internal/core"

// CellBuffer is an in-memory Surface backed by a grid of glyph bytes.
type CellBuffer struct {
	grid  *core.Grid[byte]
	dirty []int
	shown int
}

// NewCellBuffer allocates a blank buffer of cols x rows characters.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{grid: core.NewGrid[byte](cols, rows)}
	b.grid.Fill(EmptyGlyph)
	return b
}

// Size returns the buffer dimensions in characters.
func (b *CellBuffer) Size() core.Size { return core.Size{W: b.grid.W, H: b.grid.H} }

// Clear blanks every cell.
func (b *CellBuffer) Clear() {
	b.grid.Fill(EmptyGlyph)
	b.dirty = b.dirty[:0]
}

// SetCell writes a single glyph. Out of range writes and non-ASCII glyphs
// are ignored.
func (b *CellBuffer) SetCell(col, row int, glyph rune) {
	if col < 0 || col >= b.grid.W || row < 0 || row >= b.grid.H || glyph > 0x7f {
		return
	}
	b.grid.Set(col, row, byte(glyph))
	b.dirty = append(b.dirty, b.grid.Index(col, row))
}

// Print writes text starting at (col, row), clipped to the row.
func (b *CellBuffer) Print(col, row int, text string) {
	for i, r := range text {
		b.SetCell(col+i, row, r)
	}
}

// Show marks pending writes as presented.
func (b *CellBuffer) Show() {
	b.shown += len(b.dirty)
	b.dirty = b.dirty[:0]
}

// Writes returns the number of cell writes presented so far.
func (b *CellBuffer) Writes() int { return b.shown }

// At returns the glyph at (col, row).
func (b *CellBuffer) At(col, row int) byte { return b.grid.At(col, row) }

// Line returns row as a string.
func (b *CellBuffer) Line(row int) string {
	start := b.grid.Index(0, row)
	return string(b.grid.Cells()[start : start+b.grid.W])
}

// Rows returns the glyphs of rows [from, to) in row-major order.
func (b *CellBuffer) Rows(from, to int) []byte {
	return b.grid.Cells()[b.grid.Index(0, from):b.grid.Index(0, to)]
}
