// Package frame provides the cooperative per-frame clock that motion
// values and animation drivers synchronize on.
//
// A [Scheduler] owns the timing state for one frame loop. The host calls
// [Scheduler.Step] once per frame, which opens the frame (updating the
// timestamp and delta readable via [Scheduler.Frame]), runs all active
// [Ticker] callbacks, and finally flushes the one-shot post-render
// callbacks registered via [Scheduler.PostRender]. Within a frame,
// tickers always run strictly before post-render callbacks.
//
// Most code uses the package-level [Default] scheduler, stepped by the
// host via [Step]. Tests construct their own Scheduler and pump it with
// synthetic timestamps.
package frame

import (
	"sync"
	"time"

	"github.com/go-motion/motion/pkg/errors"
)

// maxDelta caps the reported frame delta so a long pause (debugger,
// backgrounded process) does not produce teleporting animations or
// huge velocity readings on resume.
const maxDelta = 40 * time.Millisecond

// Frame is a snapshot of the current frame's timing.
type Frame struct {
	// Timestamp is the time at which the frame began.
	Timestamp time.Time
	// Delta is the elapsed time since the previous frame began.
	// It is 0 on the first frame and never exceeds 40ms.
	Delta time.Duration
}

// Scheduler owns the frame state for one cooperative loop: the current
// timestamp and delta, the active tickers, and the pending post-render
// callbacks.
type Scheduler struct {
	mu         sync.Mutex
	current    Frame
	started    bool
	postRender []func(Frame)
	tickers    map[*Ticker]struct{}
}

// NewScheduler creates a scheduler with no frames observed yet.
func NewScheduler() *Scheduler {
	return &Scheduler{tickers: make(map[*Ticker]struct{})}
}

// Frame returns the timing of the current frame. Safe to call at any
// point; before the first Begin it returns the zero Frame.
func (s *Scheduler) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// PostRender registers a one-shot callback to run during the post-render
// phase. Callbacks registered while the post-render phase is running are
// deferred to the next frame's phase.
func (s *Scheduler) PostRender(fn func(Frame)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.postRender = append(s.postRender, fn)
	s.mu.Unlock()
}

// Begin opens a new frame at the given time. The delta is the elapsed
// time since the previous frame began, clamped to [0, 40ms]; the first
// frame has delta 0.
func (s *Scheduler) Begin(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		s.started = true
		s.current = Frame{Timestamp: now}
		return
	}
	d := now.Sub(s.current.Timestamp)
	if d < 0 {
		d = 0
	}
	if d > maxDelta {
		d = maxDelta
	}
	s.current = Frame{Timestamp: now, Delta: d}
}

// FlushPostRender runs and clears the pending post-render callbacks.
// A panicking callback is reported via the errors package and does not
// prevent the remaining callbacks from running.
func (s *Scheduler) FlushPostRender() {
	s.mu.Lock()
	pending := s.postRender
	s.postRender = nil
	f := s.current
	s.mu.Unlock()

	for _, fn := range pending {
		runFrameCallback("frame.FlushPostRender", f, fn)
	}
}

// Step advances the scheduler by one full frame: Begin, then all active
// tickers, then the post-render flush. Hosts call this once per frame.
func (s *Scheduler) Step(now time.Time) {
	s.Begin(now)
	s.stepTickers()
	s.FlushPostRender()
}

// HasActiveTickers returns true if any tickers are active. Hosts can use
// this to decide whether another frame needs to be scheduled.
func (s *Scheduler) HasActiveTickers() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tickers) > 0
}

func (s *Scheduler) stepTickers() {
	s.mu.Lock()
	if len(s.tickers) == 0 {
		s.mu.Unlock()
		return
	}
	// Copy to avoid holding the lock during callbacks.
	tickers := make([]*Ticker, 0, len(s.tickers))
	for t := range s.tickers {
		tickers = append(tickers, t)
	}
	f := s.current
	s.mu.Unlock()

	for _, t := range tickers {
		if t.IsActive() {
			runFrameCallback("frame.stepTickers", f, t.fn)
		}
	}
}

func runFrameCallback(op string, f Frame, fn func(Frame)) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{Op: op, Value: r})
		}
	}()
	fn(f)
}

var defaultScheduler = NewScheduler()

// Default returns the package-level scheduler used by motion values that
// are not configured with an explicit one.
func Default() *Scheduler { return defaultScheduler }

// Step advances the package-level scheduler by one frame.
func Step(now time.Time) { defaultScheduler.Step(now) }
