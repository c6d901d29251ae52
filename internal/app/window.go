package app

import (
	"aqualife/internal/core"
	"aqualife/internal/ui"
)

// WindowSize returns the GUI size in pixels for a grid drawn at scale, with
// room for the prompt and status rows underneath.
func WindowSize(grid core.Size, scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return grid.W * scale, grid.H*scale + ui.PanelHeight(2)
}
