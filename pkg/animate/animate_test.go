package animate

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"

	motiontest "github.com/go-motion/motion/pkg/testing"
	"github.com/go-motion/motion/pkg/value"
)

func newTestValue(t *testing.T, initial float64) (*value.Value[float64], *motiontest.Harness) {
	t.Helper()
	h := motiontest.NewHarness()
	v := value.NewWithConfig(initial, value.Config[float64]{Scheduler: h.Scheduler()})
	return v, h
}

func isClosed(done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	default:
		return false
	}
}

func TestTween_ReachesTarget(t *testing.T) {
	v, h := newTestValue(t, 0)
	done := Tween(v, 100, 160*time.Millisecond, ease.Linear)

	h.PumpFrames(12)

	if !isClosed(done) {
		t.Fatal("expected tween to complete")
	}
	if got := v.Get(); got != 100 {
		t.Errorf("expected final value 100, got %v", got)
	}
	if v.IsAnimating() {
		t.Error("expected IsAnimating false after completion")
	}
}

func TestTween_IntermediateProgress(t *testing.T) {
	v, h := newTestValue(t, 0)
	Tween(v, 100, 160*time.Millisecond, ease.Linear)

	h.PumpFrames(5) // 80ms of a 160ms linear tween

	got := v.Get()
	if got <= 0 || got >= 100 {
		t.Errorf("expected intermediate value, got %v", got)
	}
}

func TestTween_ZeroDurationCompletesImmediately(t *testing.T) {
	v, _ := newTestValue(t, 0)
	done := Tween(v, 100, 0, nil)

	if !isClosed(done) {
		t.Fatal("expected immediate completion")
	}
	if got := v.Get(); got != 100 {
		t.Errorf("expected 100, got %v", got)
	}
}

func TestTween_CancelStopsUpdates(t *testing.T) {
	v, h := newTestValue(t, 0)
	done := Tween(v, 100, 160*time.Millisecond, ease.Linear)

	h.PumpFrames(3)
	v.Stop()
	frozen := v.Get()

	h.PumpFrames(5)

	if got := v.Get(); got != frozen {
		t.Errorf("expected value frozen at %v after cancel, got %v", frozen, got)
	}
	if isClosed(done) {
		t.Error("cancelled animation must not signal completion")
	}
	if h.Scheduler().HasActiveTickers() {
		t.Error("expected the driver's ticker to be stopped")
	}
}

func TestTween_SingleFlightCancelsPrevious(t *testing.T) {
	v, h := newTestValue(t, 0)
	first := Tween(v, 100, time.Second, ease.Linear)
	h.PumpFrames(2)

	second := Tween(v, -100, 64*time.Millisecond, ease.Linear)
	h.PumpFrames(6)

	if isClosed(first) {
		t.Error("first tween was cancelled and must not complete")
	}
	if !isClosed(second) {
		t.Error("expected second tween to complete")
	}
	if got := v.Get(); got != -100 {
		t.Errorf("expected -100, got %v", got)
	}
}

func TestKeyframes_VisitsFinalValue(t *testing.T) {
	v, h := newTestValue(t, 0)
	done := Keyframes(v, []float64{50, 20}, 200*time.Millisecond, nil)

	h.PumpFrames(20)

	if !isClosed(done) {
		t.Fatal("expected keyframes to complete")
	}
	if got := v.Get(); got != 20 {
		t.Errorf("expected final keyframe 20, got %v", got)
	}
}

func TestKeyframes_EmptyCompletesImmediately(t *testing.T) {
	v, _ := newTestValue(t, 7)
	done := Keyframes(v, nil, 100*time.Millisecond, nil)

	if !isClosed(done) {
		t.Fatal("expected immediate completion for empty keyframes")
	}
	if got := v.Get(); got != 7 {
		t.Errorf("expected value untouched, got %v", got)
	}
}

func TestCurveByName(t *testing.T) {
	known := []string{"", "linear", "easeIn", "easeOut", "easeInOut",
		"cubicIn", "cubicOut", "cubicInOut", "expoOut", "backOut",
		"elasticOut", "bounceOut"}
	for _, name := range known {
		if _, ok := CurveByName(name); !ok {
			t.Errorf("expected %q to resolve", name)
		}
	}
	if _, ok := CurveByName("wobble"); ok {
		t.Error("expected unknown curve name to fail")
	}
}
