// Package value implements the reactive motion value: a single mutable
// value that tracks its rate of change, fans updates out to derived
// values and subscribers, and coordinates with at most one animation
// driver at a time, all synchronized to a per-frame clock.
//
// # Basic Usage
//
// Create a value, subscribe to changes, and drive it directly or through
// an animation driver:
//
//	x := value.New(0.0)
//	unsubscribe := x.OnChange(func(latest float64) {
//	    fmt.Println("x is now", latest)
//	})
//	defer unsubscribe()
//
//	x.Set(100)
//	fmt.Println(x.Get(), x.Velocity())
//
// Derived values follow their parent automatically:
//
//	opacity := x.AddChild(value.Config[float64]{
//	    Transform: func(v float64) float64 { return v / 100 },
//	})
//
// # Threading
//
// A Value is not safe for concurrent use. All calls are expected to
// happen on the single thread that pumps the frame scheduler, matching
// the cooperative model of the rest of the library.
package value

import (
	"time"

	"github.com/go-motion/motion/pkg/frame"
)

// Driver starts an animation that repeatedly writes to a value. It is
// given a completion callback to invoke exactly once when the animation
// finishes on its own, and returns a cancellation function that must be
// safe to call at any time, including after completion.
type Driver func(complete func()) (stop func())

// Config configures a new Value.
type Config[T comparable] struct {
	// Transform, if set, is applied to every incoming value (including
	// the initial one) before it is committed.
	Transform func(T) T

	// Scheduler is the frame clock the value synchronizes with. When
	// nil, the package-level frame.Default() scheduler is used; a child
	// created via AddChild inherits its parent's scheduler instead.
	Scheduler *frame.Scheduler
}

// Value holds a single mutable value of type T, together with the
// bookkeeping needed to report its per-second rate of change, propagate
// updates to derived children, and own at most one running animation.
//
// The zero Value is not usable; construct with New or NewWithConfig.
type Value[T comparable] struct {
	current  T
	previous T

	// timeDelta is the frame delta observed when current was last
	// committed; lastUpdated is that frame's timestamp, used to detect
	// frames in which no update occurred.
	timeDelta   time.Duration
	lastUpdated time.Time

	// canTrackVelocity is fixed at construction: true iff the initial
	// value parses as a finite number. It is never re-evaluated.
	canTrackVelocity bool

	transform func(T) T
	sched     *frame.Scheduler

	parent   *Value[T]
	children map[*Value[T]]struct{}

	// Subscriber maps are created lazily on first subscription so
	// unobserved values never allocate them.
	changeSubscribers map[int]func(T)
	renderSubscribers map[int]func(T)
	nextSubscriberID  int

	stopAnimation  func()
	animGeneration int

	// Velocity maintenance callbacks are bound once at construction so
	// scheduling them does not allocate a closure per frame.
	scheduleVelocityCheck func(frame.Frame)
	velocityCheck         func(frame.Frame)
}

// New creates a value with the given initial value on the default
// scheduler.
func New[T comparable](initial T) *Value[T] {
	return NewWithConfig(initial, Config[T]{})
}

// NewWithConfig creates a value with the given initial value and
// configuration. The initial value passes through the transform and
// seeds both the current and previous value; no subscribers exist yet,
// so nothing is notified.
func NewWithConfig[T comparable](initial T, cfg Config[T]) *Value[T] {
	v := &Value[T]{
		transform: cfg.Transform,
		sched:     cfg.Scheduler,
	}
	if v.sched == nil {
		v.sched = frame.Default()
	}
	if v.transform != nil {
		initial = v.transform(initial)
	}
	v.current = initial
	v.previous = initial
	_, v.canTrackVelocity = toFloat(initial)

	v.velocityCheck = func(f frame.Frame) {
		// A frame passed with no update: the value is at rest.
		if !f.Timestamp.Equal(v.lastUpdated) {
			v.previous = v.current
		}
	}
	v.scheduleVelocityCheck = func(frame.Frame) {
		v.sched.PostRender(v.velocityCheck)
	}
	return v
}

// Scheduler returns the frame scheduler this value synchronizes with.
func (v *Value[T]) Scheduler() *frame.Scheduler { return v.sched }

// AddChild creates a derived value whose initial value is this value's
// current one and which receives every subsequent committed value. The
// child inherits this value's scheduler unless the config names one.
// Returns the child.
func (v *Value[T]) AddChild(cfg Config[T]) *Value[T] {
	if cfg.Scheduler == nil {
		cfg.Scheduler = v.sched
	}
	child := NewWithConfig(v.current, cfg)
	child.parent = v
	if v.children == nil {
		v.children = make(map[*Value[T]]struct{})
	}
	v.children[child] = struct{}{}
	return child
}

// RemoveChild detaches a child so it no longer receives propagated
// updates. Removing an absent child is a no-op.
func (v *Value[T]) RemoveChild(child *Value[T]) {
	delete(v.children, child)
}

// OnChange registers a callback fired with the latest value whenever a
// commit changes the value. Commits that leave the value unchanged do
// not fire. Returns an unsubscribe function; calling it more than once
// is a no-op.
func (v *Value[T]) OnChange(fn func(T)) func() {
	if v.changeSubscribers == nil {
		v.changeSubscribers = make(map[int]func(T))
	}
	id := v.nextSubscriberID
	v.nextSubscriberID++
	v.changeSubscribers[id] = fn
	return func() {
		delete(v.changeSubscribers, id)
	}
}

// OnRenderRequest registers a callback tied to a visual refresh pass.
// The callback fires synchronously once at subscribe time (an immediate
// catch-up render) and thereafter on every Set, whether or not the value
// changed. SetWithoutRender suppresses it. Returns an unsubscribe
// function; calling it more than once is a no-op.
func (v *Value[T]) OnRenderRequest(fn func(T)) func() {
	fn(v.current)
	if v.renderSubscribers == nil {
		v.renderSubscribers = make(map[int]func(T))
	}
	id := v.nextSubscriberID
	v.nextSubscriberID++
	v.renderSubscribers[id] = fn
	return func() {
		delete(v.renderSubscribers, id)
	}
}

// Set commits a new value, notifying change subscribers if it differs
// from the previous one, propagating it to children, and notifying
// render subscribers unconditionally.
//
// Change detection uses Go's != operator: by-value for primitives and
// comparable structs, identity for pointers.
//
// Set must not be called on a disposed value.
func (v *Value[T]) Set(val T) {
	v.update(val, true)
}

// SetWithoutRender commits a new value like Set but does not notify this
// value's render subscribers. Propagation to children still renders
// them.
func (v *Value[T]) SetWithoutRender(val T) {
	v.update(val, false)
}

func (v *Value[T]) update(val T, render bool) {
	v.previous = v.current
	if v.transform != nil {
		val = v.transform(val)
	}
	v.current = val

	if len(v.changeSubscribers) > 0 && v.current != v.previous {
		for _, fn := range v.changeSubscribers {
			fn(v.current)
		}
	}

	for child := range v.children {
		child.update(v.current, true)
	}

	if render {
		for _, fn := range v.renderSubscribers {
			fn(v.current)
		}
	}

	// Record frame timing once per frame; the first commit of a frame
	// queues the deferred velocity check chain.
	f := v.sched.Frame()
	if !v.lastUpdated.Equal(f.Timestamp) {
		v.timeDelta = f.Delta
		v.lastUpdated = f.Timestamp
		v.sched.PostRender(v.scheduleVelocityCheck)
	}
}

// Get returns the current value. No side effects.
func (v *Value[T]) Get() T { return v.current }

// Velocity reports the value's rate of change in units per second,
// derived from the last two committed values and the frame delta
// between them. It returns 0 for values whose initial value was not
// numeric, when either committed value no longer parses as a number,
// or before any frame has elapsed. Numeric strings track velocity,
// including unit-suffixed ones like "15px".
func (v *Value[T]) Velocity() float64 {
	if !v.canTrackVelocity {
		return 0
	}
	cur, okCur := toFloat(v.current)
	prev, okPrev := toFloat(v.previous)
	if !okCur || !okPrev {
		return 0
	}
	return perSecond(cur-prev, v.timeDelta)
}

// perSecond rescales a per-frame difference to a one-second window.
// A zero delta yields 0, never a division by zero.
func perSecond(diff float64, delta time.Duration) float64 {
	if delta <= 0 {
		return 0
	}
	return diff / delta.Seconds()
}

// Start hands control of the value to an animation driver, stopping any
// animation already running first. The returned channel closes when the
// driver signals completion; it stays open forever if the animation is
// cancelled, matching the contract that cancellation is the caller's
// teardown signal.
func (v *Value[T]) Start(driver Driver) <-chan struct{} {
	v.Stop()

	done := make(chan struct{})
	v.animGeneration++
	gen := v.animGeneration
	finished := false
	complete := func() {
		if finished {
			return
		}
		finished = true
		// Only clear the handle if no newer animation took over.
		if v.animGeneration == gen {
			v.stopAnimation = nil
		}
		close(done)
	}

	stop := driver(complete)
	if !finished && v.animGeneration == gen {
		v.stopAnimation = stop
	}
	return done
}

// Stop cancels the active animation, if any. Safe to call when nothing
// is animating.
func (v *Value[T]) Stop() {
	if v.stopAnimation != nil {
		v.stopAnimation()
	}
	v.stopAnimation = nil
}

// IsAnimating returns true while an animation driver controls the value.
func (v *Value[T]) IsAnimating() bool {
	return v.stopAnimation != nil
}

// Dispose clears both subscriber sets, detaches from the parent's child
// set, and stops any active animation. Children are orphaned, not
// disposed; tearing down a graph top-down is the caller's job. A
// disposed value must not be reused.
func (v *Value[T]) Dispose() {
	v.changeSubscribers = nil
	v.renderSubscribers = nil
	if v.parent != nil {
		v.parent.RemoveChild(v)
		v.parent = nil
	}
	v.Stop()
}
