// Package engine drives scenes with a fixed-timestep loop and hosts the
// active scene on behalf of a platform (terminal or window).
package engine

import (
	"time"

	"github.com/vovakirdan/treasure-arcade/internal/core"
)

// MaxFrameDelta caps the wall time a single frame may feed into the
// accumulator, so a stalled host (debugger, suspended tab) does not trigger
// a burst of catch-up steps.
const MaxFrameDelta = 250 * time.Millisecond

// DefaultTickRate is used when no tick rate is configured.
const DefaultTickRate = 60

// Sim is anything the loop can step and draw.
type Sim interface {
	Update(dt float64)
	Render(dst core.Surface)
}

// Loop is a fixed-timestep scheduler. The host calls Frame once per
// animation callback; Loop turns wall time into zero or more fixed updates
// followed by exactly one render.
type Loop struct {
	step    time.Duration
	acc     time.Duration
	last    time.Time
	running bool
}

// NewLoop creates a stopped loop ticking tickRate times per second.
func NewLoop(tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Loop{step: time.Second / time.Duration(tickRate)}
}

// Step returns the fixed step duration.
func (l *Loop) Step() time.Duration {
	return l.step
}

// Accumulator returns the wall time not yet consumed by a step.
func (l *Loop) Accumulator() time.Duration {
	return l.acc
}

// Running reports whether the loop is started.
func (l *Loop) Running() bool {
	return l.running
}

// Start begins timing at now. Calling Start on a running loop does nothing.
func (l *Loop) Start(now time.Time) {
	if l.running {
		return
	}
	l.running = true
	l.last = now
	l.acc = 0
}

// Stop halts the loop. Subsequent frames neither update nor render.
func (l *Loop) Stop() {
	l.running = false
}

// Frame advances the loop to now: it runs as many fixed updates as the
// accumulated time allows and then renders once. Returns the number of
// updates performed.
func (l *Loop) Frame(now time.Time, sim Sim, dst core.Surface) int {
	if !l.running {
		return 0
	}

	delta := now.Sub(l.last)
	l.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > MaxFrameDelta {
		delta = MaxFrameDelta
	}
	l.acc += delta

	dt := l.step.Seconds()
	steps := 0
	for l.acc >= l.step {
		sim.Update(dt)
		l.acc -= l.step
		steps++
		// A step may stop the loop (quit); drop the rest of the backlog
		if !l.running {
			return steps
		}
	}

	sim.Render(dst)
	return steps
}
