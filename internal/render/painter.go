//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads the glyph rows of a CellBuffer into a single image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of w x h cells.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit paints the first h rows of cells onto dst, one scaled pixel per cell.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells *CellBuffer, on, off color.Color, scale int) {
	glyphs := cells.Rows(0, gp.h)
	if len(glyphs) != gp.w*gp.h {
		return
	}
	fillGlyphRGBA(gp.buf, glyphs, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
