package render

import (
	"fmt"

	"aqualife/internal/sims/life"
)

const (
	// ScreenRows is the height of the character display.
	ScreenRows = 24
	// ScreenCols is the width of the character display.
	ScreenCols = 40

	// PromptRow holds the restart hint.
	PromptRow = 22
	// StatusRow holds the generation and population counters.
	StatusRow = 23

	// AliveGlyph marks a live cell.
	AliveGlyph = 'O'
	// EmptyGlyph marks a dead cell.
	EmptyGlyph = ' '

	// Prompt is printed on PromptRow after every reseed.
	Prompt = "Press any key to restart!"
)

// Surface is a character display addressed by (column, row).
type Surface interface {
	Clear()
	SetCell(col, row int, glyph rune)
	Print(col, row int, text string)
	Show()
}

// Renderer draws a World onto a Surface, touching only cells that changed.
type Renderer struct {
	surface Surface
}

// NewRenderer constructs a Renderer for the provided surface.
func NewRenderer(s Surface) *Renderer {
	return &Renderer{surface: s}
}

// Status formats the status line for a generation and population.
func Status(generation, population int) string {
	return fmt.Sprintf("Generation:%4d Population:%3d", generation, population)
}

// DrawSeed clears the surface and draws a freshly seeded world in full.
func (r *Renderer) DrawSeed(w *life.World) {
	r.surface.Clear()
	r.surface.Print(0, PromptRow, Prompt)
	for row := 0; row < w.Rows(); row++ {
		for col := 0; col < w.Cols(); col++ {
			if w.Alive(row, col) {
				r.surface.SetCell(col, row, AliveGlyph)
			}
		}
	}
	r.drawStatus(w)
	r.surface.Show()
}

// Draw redraws the cells that flipped in the last generation and the status
// line.
func (r *Renderer) Draw(w *life.World) {
	for _, ch := range w.Changes() {
		glyph := EmptyGlyph
		if ch.Alive {
			glyph = AliveGlyph
		}
		r.surface.SetCell(ch.Col, ch.Row, glyph)
	}
	r.drawStatus(w)
	r.surface.Show()
}

func (r *Renderer) drawStatus(w *life.World) {
	r.surface.Print(0, StatusRow, Status(w.Generation(), w.Population()))
}
