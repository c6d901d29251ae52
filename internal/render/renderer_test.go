package render

import (
	"strings"
	"testing"

	"aqualife/internal/core"
	"aqualife/internal/sims/life"
)

func TestStatusFormat(t *testing.T) {
	if got, want := Status(7, 42), "Generation:   7 Population: 42"; got != want {
		t.Fatalf("Status = %q, want %q", got, want)
	}
}

func TestDrawSeedPaintsWholeWorld(t *testing.T) {
	w := life.New(life.Rows, life.Cols)
	rng := core.NewRNG(5)
	w.Seed(rng, life.SeedCount(rng))

	buf := NewCellBuffer(ScreenCols, ScreenRows)
	buf.Print(0, 0, "stale")
	NewRenderer(buf).DrawSeed(w)

	for row := 0; row < life.Rows; row++ {
		for col := 0; col < life.Cols; col++ {
			want := byte(EmptyGlyph)
			if w.Alive(row, col) {
				want = AliveGlyph
			}
			if got := buf.At(col, row); got != want {
				t.Fatalf("cell (%d,%d) = %q, want %q", row, col, got, want)
			}
		}
	}
	if line := buf.Line(PromptRow); !strings.HasPrefix(line, Prompt) {
		t.Fatalf("prompt row = %q", line)
	}
	if line := buf.Line(StatusRow); !strings.HasPrefix(line, Status(0, w.Population())) {
		t.Fatalf("status row = %q", line)
	}
}

func TestDrawOnlyTouchesChangedCells(t *testing.T) {
	w := life.New(life.Rows, life.Cols)
	for _, rc := range [][2]int{{10, 19}, {10, 20}, {10, 21}, {2, 2}, {2, 3}, {3, 2}, {3, 3}} {
		w.Set(rc[0], rc[1], life.Cell{Alive: true})
	}
	w.Recount()

	buf := NewCellBuffer(ScreenCols, ScreenRows)
	r := NewRenderer(buf)
	r.DrawSeed(w)
	before := buf.Writes()

	w.Step(nil)
	r.Draw(w)

	status := Status(1, w.Population())
	if got, want := buf.Writes()-before, len(w.Changes())+len(status); got != want {
		t.Fatalf("draw wrote %d cells, want %d", got, want)
	}
	if buf.At(20, 9) != AliveGlyph || buf.At(20, 11) != AliveGlyph {
		t.Fatal("newly alive cells not drawn")
	}
	if buf.At(19, 10) != EmptyGlyph || buf.At(21, 10) != EmptyGlyph {
		t.Fatal("newly dead cells not erased")
	}
	if buf.At(2, 2) != AliveGlyph {
		t.Fatal("unchanged block cell lost")
	}
	if !strings.HasPrefix(buf.Line(StatusRow), status) {
		t.Fatalf("status row = %q", buf.Line(StatusRow))
	}
}
