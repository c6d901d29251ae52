package app

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"aqualife/internal/core"
	"aqualife/internal/render"
	"aqualife/internal/sims/life"
)

func newTestLoop(seed int64, input core.Canceller) (*Loop, *render.CellBuffer, *bytes.Buffer) {
	buf := render.NewCellBuffer(render.ScreenCols, render.ScreenRows)
	var logs bytes.Buffer
	l := NewLoop(life.New(life.Rows, life.Cols), render.NewRenderer(buf), input, core.NewRNG(seed), log.New(&logs, "", 0))
	return l, buf, &logs
}

func checkSeeded(t *testing.T, l *Loop) {
	t.Helper()
	w := l.World()
	if l.State() != StateRunning {
		t.Fatalf("state = %v, want running", l.State())
	}
	if w.Generation() != 0 {
		t.Fatalf("generation = %d after seeding", w.Generation())
	}
	if w.Population() < 1 || w.Population() > 2*life.LifeNum-1 {
		t.Fatalf("seeded population %d out of bounds", w.Population())
	}
}

func TestLoopSeedsThenSteps(t *testing.T) {
	l, buf, logs := newTestLoop(11, nil)
	if l.State() != StateSeeding {
		t.Fatalf("initial state = %v", l.State())
	}
	l.Tick()
	checkSeeded(t, l)
	if l.Runs() != 1 {
		t.Fatalf("runs = %d, want 1", l.Runs())
	}
	if !strings.HasPrefix(buf.Line(render.StatusRow), render.Status(0, l.World().Population())) {
		t.Fatalf("status row = %q", buf.Line(render.StatusRow))
	}

	for i := 1; i <= 5 && l.State() == StateRunning; i++ {
		l.Tick()
		if l.World().Generation() != i {
			t.Fatalf("generation = %d, want %d", l.World().Generation(), i)
		}
	}
	if !strings.Contains(logs.String(), "run 1: seeded") {
		t.Fatalf("missing seed log, got %q", logs.String())
	}
}

func TestLoopKeyPressReseedsImmediately(t *testing.T) {
	var keys core.KeyQueue
	l, _, logs := newTestLoop(12, &keys)
	l.Tick()
	l.Tick()

	keys.Push()
	if got := l.Tick(); got != StateCancelled {
		t.Fatalf("state = %v, want cancelled", got)
	}
	if keys.Pending() != 0 {
		t.Fatalf("cancellation consumed %d keys too few", keys.Pending())
	}
	l.Tick()
	checkSeeded(t, l)
	if l.Runs() != 2 {
		t.Fatalf("runs = %d, want 2", l.Runs())
	}
	if !strings.Contains(logs.String(), "run 1: cancelled") {
		t.Fatalf("missing cancel log, got %q", logs.String())
	}
}

type cancelOnCall struct {
	calls, at int
}

func (c *cancelOnCall) Cancelled() bool {
	c.calls++
	return c.calls == c.at
}

func TestLoopCancelledDuringAccumulation(t *testing.T) {
	// Call 1 is the between-generation check; call 5 lands inside the
	// accumulation pass.
	c := &cancelOnCall{at: 5}
	l, _, _ := newTestLoop(13, c)
	l.Tick()
	if got := l.Tick(); got != StateCancelled {
		t.Fatalf("state = %v, want cancelled", got)
	}
	if l.World().Generation() != 0 {
		t.Fatalf("generation advanced to %d on a cancelled step", l.World().Generation())
	}
}

func TestLoopExtinctionWaitsForKey(t *testing.T) {
	var keys core.KeyQueue
	l, buf, _ := newTestLoop(14, &keys)
	l.Tick()

	w := l.World()
	w.Init(life.Rows, life.Cols)
	w.Set(6, 6, life.Cell{Alive: true})
	w.Recount()

	if got := l.Tick(); got != StateExtinct {
		t.Fatalf("state = %v, want extinct", got)
	}
	if w.Population() != 0 {
		t.Fatalf("population = %d", w.Population())
	}
	if !strings.HasPrefix(buf.Line(render.StatusRow), render.Status(1, 0)) {
		t.Fatalf("status row = %q", buf.Line(render.StatusRow))
	}
	for i := 0; i < 3; i++ {
		if got := l.Tick(); got != StateExtinct {
			t.Fatalf("state = %v without acknowledgement", got)
		}
	}

	keys.Push()
	l.Tick()
	checkSeeded(t, l)
	if l.Runs() != 2 {
		t.Fatalf("runs = %d, want 2", l.Runs())
	}
}

func TestLoopRunStopsWithContext(t *testing.T) {
	l, _, _ := newTestLoop(15, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := l.Run(ctx, 1000)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run returned %v", err)
	}
	if l.Runs() < 1 {
		t.Fatal("Run never seeded the world")
	}
}

func TestStateString(t *testing.T) {
	if StateExtinct.String() != "extinct" || State(42).String() != "unknown" {
		t.Fatal("unexpected state names")
	}
}
