//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"aqualife/internal/render"
)

const lineBaseline = 12

// Panel renders text rows of a CellBuffer (prompt and status) below the grid.
type Panel struct {
	buffer *render.CellBuffer
	rows   []int
	width  int
	img    *ebiten.Image
}

// NewPanel constructs a Panel of the given pixel width showing rows of buffer.
func NewPanel(buffer *render.CellBuffer, width int, rows ...int) *Panel {
	if width < 1 {
		width = 1
	}
	return &Panel{buffer: buffer, rows: rows, width: width}
}

// Height returns the panel height in pixels.
func (p *Panel) Height() int { return PanelHeight(len(p.rows)) }

// Draw paints the panel with its top edge at offsetY.
func (p *Panel) Draw(screen *ebiten.Image, offsetY int) {
	if p == nil {
		return
	}
	if p.img == nil || p.img.Bounds().Dx() != p.width {
		p.img = ebiten.NewImage(p.width, p.Height())
	}
	p.img.Fill(render.Paper)
	face := basicfont.Face7x13
	for i, row := range p.rows {
		y := panelPadding + i*lineHeight + lineBaseline
		text.Draw(p.img, p.buffer.Line(row), face, panelPadding, y, render.Ink)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(p.img, op)
}
