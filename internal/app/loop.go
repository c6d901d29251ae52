package app

import (
	"context"
	"io"
	"log"
	"time"

	"aqualife/internal/core"
	"aqualife/internal/render"
	"aqualife/internal/sims/life"
)

// State is a phase of the run loop.
type State int

const (
	StateSeeding State = iota
	StateRunning
	StateExtinct
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateSeeding:
		return "seeding"
	case StateRunning:
		return "running"
	case StateExtinct:
		return "extinct"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Loop drives a World through repeated runs: seed, step until extinction or a
// key press, then seed again.
type Loop struct {
	world    *life.World
	renderer *render.Renderer
	input    core.Canceller
	rng      *core.RNG
	logger   *log.Logger

	state State
	runs  int
}

// NewLoop constructs a Loop in the seeding state. input is polled between
// generations and at the accumulation checkpoints; a nil logger discards
// output.
func NewLoop(world *life.World, renderer *render.Renderer, input core.Canceller, rng *core.RNG, logger *log.Logger) *Loop {
	if input == nil {
		input = core.Never
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Loop{world: world, renderer: renderer, input: input, rng: rng, logger: logger}
}

// State returns the current phase.
func (l *Loop) State() State { return l.state }

// World exposes the simulation state.
func (l *Loop) World() *life.World { return l.world }

// Runs returns how many times the world has been seeded.
func (l *Loop) Runs() int { return l.runs }

// Tick performs one transition: seeding a new run, advancing one generation,
// or checking whether an extinct run has been acknowledged.
func (l *Loop) Tick() State {
	switch l.state {
	case StateSeeding, StateCancelled:
		l.seed()
	case StateRunning:
		l.advance()
	case StateExtinct:
		if l.input.Cancelled() {
			l.seed()
		}
	}
	return l.state
}

// Run ticks the loop at tps generations per second until ctx is done. A
// cancelled run is reseeded without waiting for the next tick.
func (l *Loop) Run(ctx context.Context, tps int) error {
	fs := core.NewFixedStep(tps)
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		if fs.ShouldStep() && l.Tick() == StateCancelled {
			l.Tick()
		}
		timer.Reset(max(fs.Remaining(), time.Millisecond))
	}
}

func (l *Loop) seed() {
	l.world.Init(life.Rows, life.Cols)
	draws := life.SeedCount(l.rng)
	l.world.Seed(l.rng, draws)
	l.runs++
	l.logger.Printf("run %d: seeded %d cells from %d draws", l.runs, l.world.Population(), draws)
	l.renderer.DrawSeed(l.world)
	l.state = StateRunning
}

func (l *Loop) advance() {
	if l.input.Cancelled() || !l.world.Step(l.input) {
		l.finish(StateCancelled)
		return
	}
	l.renderer.Draw(l.world)
	if l.world.Population() == 0 {
		l.finish(StateExtinct)
	}
}

func (l *Loop) finish(s State) {
	l.logger.Printf("run %d: %s at generation %d", l.runs, s, l.world.Generation())
	l.state = s
}
