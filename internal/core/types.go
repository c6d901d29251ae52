package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Canceller is sampled at checkpoints during long-running work. A true result
// asks the caller to abandon what it is doing.
type Canceller interface {
	Cancelled() bool
}

// Never is a Canceller that never cancels.
var Never Canceller = never{}

type never struct{}

func (never) Cancelled() bool { return false }
