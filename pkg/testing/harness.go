// Package testing provides deterministic test tooling for the motion
// library: a fake clock and a harness that pumps synthetic frames
// through a private scheduler.
package testing

import (
	"time"

	"github.com/go-motion/motion/pkg/frame"
)

// defaultFrameDuration approximates a 60fps display.
const defaultFrameDuration = 16 * time.Millisecond

// Harness drives a private frame scheduler with synthetic frames.
//
// Construct values against Scheduler() and call Pump to advance them one
// frame at a time:
//
//	h := motiontest.NewHarness()
//	v := value.NewWithConfig(0.0, value.Config[float64]{Scheduler: h.Scheduler()})
//	h.Pump()
type Harness struct {
	clock         *FakeClock
	sched         *frame.Scheduler
	frameDuration time.Duration
}

// NewHarness creates a harness with a 16ms frame duration. The scheduler
// is primed with one frame at the clock's epoch, so the first Pump
// already carries a real delta.
func NewHarness() *Harness {
	h := &Harness{
		clock:         NewFakeClock(),
		sched:         frame.NewScheduler(),
		frameDuration: defaultFrameDuration,
	}
	h.sched.Step(h.clock.Now())
	return h
}

// Scheduler returns the harness's frame scheduler.
func (h *Harness) Scheduler() *frame.Scheduler { return h.sched }

// Clock returns the harness's fake clock.
func (h *Harness) Clock() *FakeClock { return h.clock }

// SetFrameDuration changes the synthetic frame duration for subsequent
// pumps.
func (h *Harness) SetFrameDuration(d time.Duration) {
	h.frameDuration = d
}

// Pump advances the clock by one frame duration and steps the scheduler.
func (h *Harness) Pump() {
	h.clock.Advance(h.frameDuration)
	h.sched.Step(h.clock.Now())
}

// PumpFrames pumps n frames.
func (h *Harness) PumpFrames(n int) {
	for i := 0; i < n; i++ {
		h.Pump()
	}
}

// PumpFor pumps whole frames until at least d of synthetic time has
// elapsed.
func (h *Harness) PumpFor(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += h.frameDuration {
		h.Pump()
	}
}
