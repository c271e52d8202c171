package frame

import (
	"testing"
	"time"

	"github.com/go-motion/motion/pkg/errors"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestScheduler_FirstFrameDeltaZero(t *testing.T) {
	s := NewScheduler()
	s.Begin(epoch)

	f := s.Frame()
	if !f.Timestamp.Equal(epoch) {
		t.Errorf("expected timestamp %v, got %v", epoch, f.Timestamp)
	}
	if f.Delta != 0 {
		t.Errorf("expected first frame delta 0, got %v", f.Delta)
	}
}

func TestScheduler_DeltaBetweenFrames(t *testing.T) {
	s := NewScheduler()
	s.Begin(epoch)
	s.Begin(epoch.Add(16 * time.Millisecond))

	if got := s.Frame().Delta; got != 16*time.Millisecond {
		t.Errorf("expected delta 16ms, got %v", got)
	}
}

func TestScheduler_DeltaClamped(t *testing.T) {
	s := NewScheduler()
	s.Begin(epoch)
	s.Begin(epoch.Add(5 * time.Second))

	if got := s.Frame().Delta; got != maxDelta {
		t.Errorf("expected delta clamped to %v, got %v", maxDelta, got)
	}

	// Time going backwards clamps to zero rather than a negative delta.
	s.Begin(epoch)
	if got := s.Frame().Delta; got != 0 {
		t.Errorf("expected non-negative delta, got %v", got)
	}
}

func TestPostRender_OneShot(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.PostRender(func(Frame) { calls++ })

	s.Step(epoch)
	s.Step(epoch.Add(16 * time.Millisecond))

	if calls != 1 {
		t.Errorf("expected post-render callback to run once, got %d", calls)
	}
}

func TestPostRender_RegisteredDuringFlushRunsNextFrame(t *testing.T) {
	s := NewScheduler()
	var stamps []time.Time
	s.PostRender(func(f Frame) {
		s.PostRender(func(inner Frame) {
			stamps = append(stamps, inner.Timestamp)
		})
	})

	s.Step(epoch)
	if len(stamps) != 0 {
		t.Fatal("nested callback must not run within the same flush")
	}

	next := epoch.Add(16 * time.Millisecond)
	s.Step(next)
	if len(stamps) != 1 || !stamps[0].Equal(next) {
		t.Errorf("expected nested callback on the next frame, got %v", stamps)
	}
}

func TestStep_TickersRunBeforePostRender(t *testing.T) {
	s := NewScheduler()
	var order []string
	ticker := s.NewTicker(func(Frame) { order = append(order, "tick") })
	ticker.Start()
	s.PostRender(func(Frame) { order = append(order, "post") })

	s.Step(epoch)

	if len(order) != 2 || order[0] != "tick" || order[1] != "post" {
		t.Errorf("expected [tick post], got %v", order)
	}
}

func TestTicker_StartStop(t *testing.T) {
	s := NewScheduler()
	ticks := 0
	ticker := s.NewTicker(func(Frame) { ticks++ })

	s.Step(epoch)
	if ticks != 0 {
		t.Fatal("inactive ticker must not tick")
	}

	ticker.Start()
	ticker.Start() // idempotent
	if !ticker.IsActive() {
		t.Fatal("expected ticker active after Start")
	}
	s.Step(epoch.Add(16 * time.Millisecond))
	if ticks != 1 {
		t.Errorf("expected 1 tick, got %d", ticks)
	}

	ticker.Stop()
	ticker.Stop() // idempotent
	s.Step(epoch.Add(32 * time.Millisecond))
	if ticks != 1 {
		t.Errorf("expected no ticks after Stop, got %d", ticks)
	}
}

func TestTicker_StopDuringTick(t *testing.T) {
	s := NewScheduler()
	ticks := 0
	var ticker *Ticker
	ticker = s.NewTicker(func(Frame) {
		ticks++
		ticker.Stop()
	})
	ticker.Start()

	s.Step(epoch)
	s.Step(epoch.Add(16 * time.Millisecond))

	if ticks != 1 {
		t.Errorf("expected ticker to stop itself after one tick, got %d", ticks)
	}
	if s.HasActiveTickers() {
		t.Error("expected no active tickers")
	}
}

type capturingHandler struct {
	panics []*errors.PanicError
}

func (h *capturingHandler) HandleError(*errors.MotionError) {}
func (h *capturingHandler) HandlePanic(err *errors.PanicError) {
	h.panics = append(h.panics, err)
}

func TestFlushPostRender_RecoversPanics(t *testing.T) {
	captured := &capturingHandler{}
	errors.SetHandler(captured)
	defer errors.SetHandler(nil)

	s := NewScheduler()
	ran := false
	s.PostRender(func(Frame) { panic("boom") })
	s.PostRender(func(Frame) { ran = true })

	s.Step(epoch)

	if !ran {
		t.Error("expected callbacks after a panicking one to still run")
	}
	if len(captured.panics) != 1 {
		t.Fatalf("expected 1 reported panic, got %d", len(captured.panics))
	}
	if captured.panics[0].Value != "boom" {
		t.Errorf("expected panic value 'boom', got %v", captured.panics[0].Value)
	}
}

func TestDefaultScheduler(t *testing.T) {
	if Default() == nil {
		t.Fatal("expected a default scheduler")
	}
	ran := false
	Default().PostRender(func(Frame) { ran = true })
	Step(time.Now())
	if !ran {
		t.Error("expected package-level Step to flush the default scheduler")
	}
}
