// Package ui holds the GUI decorations drawn around the life grid: the text
// panel and the change overlay. Drawing code requires the ebiten build tag.
package ui

import "image/color"

const (
	panelPadding = 6
	lineHeight   = 16
)

// PanelHeight returns the pixel height of a panel showing n text rows.
func PanelHeight(n int) int { return 2*panelPadding + n*lineHeight }

// ChangeColor is the overlay tint for a cell that was born (alive) or died.
func ChangeColor(alive bool) color.RGBA {
	if alive {
		return color.RGBA{R: 40, G: 200, B: 80, A: 160}
	}
	return color.RGBA{R: 220, G: 60, B: 50, A: 160}
}
