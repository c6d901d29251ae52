package core

// Grid stores a 2D grid of cell values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y). Coordinates must be in range.
func (g *Grid[T]) At(x, y int) T { return g.data[g.Index(x, y)] }

// Ptr returns a pointer to the value at (x, y) for in-place updates.
func (g *Grid[T]) Ptr(x, y int) *T { return &g.data[g.Index(x, y)] }

// Set stores v at (x, y). Coordinates must be in range.
func (g *Grid[T]) Set(x, y int, v T) { g.data[g.Index(x, y)] = v }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid[T]) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear resets every cell to the zero value.
func (g *Grid[T]) Clear() {
	var zero T
	g.Fill(zero)
}
