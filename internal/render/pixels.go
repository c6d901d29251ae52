package render

import "image/color"

// fillGlyphRGBA converts glyph cells into RGBA pixels in buf, painting
// anything other than EmptyGlyph with on.
func fillGlyphRGBA(buf []byte, cells []byte, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != EmptyGlyph && c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Paper and Ink mirror the terminal palette: black ink on cyan paper.
var (
	Paper = color.RGBA{R: 0, G: 170, B: 170, A: 255}
	Ink   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)
