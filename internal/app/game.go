//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"aqualife/internal/core"
	"aqualife/internal/render"
	"aqualife/internal/ui"
)

// Game adapts a Loop to the ebiten.Game interface.
type Game struct {
	loop    *Loop
	keys    *core.KeyQueue
	buffer  *render.CellBuffer
	painter *render.GridPainter
	panel   *ui.Panel
	overlay *ui.Overlay

	scale   int
	pressed []ebiten.Key
}

// NewGame constructs a Game for a loop drawing into buffer and reading keys.
func NewGame(loop *Loop, buffer *render.CellBuffer, keys *core.KeyQueue, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := loop.World().Size()
	return &Game{
		loop:    loop,
		keys:    keys,
		buffer:  buffer,
		painter: render.NewGridPainter(size.W, size.H),
		panel:   ui.NewPanel(buffer, size.W*scale, render.PromptRow, render.StatusRow),
		overlay: ui.NewOverlay(loop.World(), scale),
		scale:   scale,
	}
}

// Update forwards key presses to the loop and advances it by one tick.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		switch k {
		case ebiten.KeyQ, ebiten.KeyEscape:
			return ebiten.Termination
		case ui.ToggleKey:
		default:
			g.keys.Push()
		}
	}
	g.overlay.Update()

	if g.loop.Tick() == StateCancelled {
		g.loop.Tick()
	}
	return nil
}

// Draw renders the grid, the overlay and the text panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Paper)
	g.painter.Blit(screen, g.buffer, render.Ink, render.Paper, g.scale)
	g.overlay.Draw(screen)
	_, h := g.painter.Size()
	g.panel.Draw(screen, h*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize(g.loop.World().Size(), g.scale)
}
