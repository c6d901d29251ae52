//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"aqualife/internal/sims/life"
)

// ToggleKey shows or hides the overlay.
const ToggleKey = ebiten.KeyTab

// Overlay highlights the cells that flipped in the last generation.
type Overlay struct {
	world *life.World
	scale int
	show  bool
	pixel *ebiten.Image
}

// NewOverlay constructs a hidden overlay for world.
func NewOverlay(world *life.World, scale int) *Overlay {
	o := &Overlay{world: world, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles visibility on ToggleKey.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ToggleKey) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	scale := float64(max(o.scale, 1))
	for _, ch := range o.world.Changes() {
		col := ChangeColor(ch.Alive)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(ch.Col)*scale, float64(ch.Row)*scale)
		op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
		screen.DrawImage(o.pixel, op)
	}
}
