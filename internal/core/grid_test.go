package core

import "testing"

func TestGridWrap(t *testing.T) {
	g := NewGrid[uint8](40, 21)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, -1, 39, 20},
		{40, 21, 0, 0},
		{0, 0, 0, 0},
		{39, -1, 39, 20},
		{-41, 43, 39, 1},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestGridClampsDimensions(t *testing.T) {
	g := NewGrid[bool](0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestGridSetAtClear(t *testing.T) {
	g := NewGrid[byte](3, 2)
	g.Set(2, 1, 'O')
	if got := g.At(2, 1); got != 'O' {
		t.Fatalf("At(2,1) = %q, want 'O'", got)
	}
	if idx := g.Index(2, 1); g.Cells()[idx] != 'O' {
		t.Fatalf("backing slice not updated at index %d", idx)
	}
	*g.Ptr(0, 0) = 'x'
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %q after Clear", i, v)
		}
	}
	g.Fill(' ')
	if g.At(1, 1) != ' ' {
		t.Fatal("Fill did not set cells")
	}
}
