// Package animate provides animation drivers for motion values.
//
// Every driver satisfies [value.Driver]: it ticks on the value's frame
// scheduler, calls its completion callback exactly once when it finishes
// on its own, and returns a cancellation function that is safe to call
// at any time. The convenience functions ([Tween], [Spring], [Keyframes],
// [TweenColor]) start the driver on the value immediately and return the
// completion channel from [value.Value.Start].
package animate

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/go-motion/motion/pkg/frame"
	"github.com/go-motion/motion/pkg/value"
)

// Tween animates v to the target over the given duration with the given
// easing function (nil means linear).
func Tween(v *value.Value[float64], to float64, d time.Duration, fn ease.TweenFunc) <-chan struct{} {
	return v.Start(TweenDriver(v, to, d, fn))
}

// TweenDriver returns a driver that animates v to the target over the
// given duration. The final frame commits exactly the target value.
// A non-positive duration completes immediately.
func TweenDriver(v *value.Value[float64], to float64, d time.Duration, fn ease.TweenFunc) value.Driver {
	return func(complete func()) func() {
		if d <= 0 {
			v.Set(to)
			complete()
			return func() {}
		}
		if fn == nil {
			fn = ease.Linear
		}
		tw := gween.New(float32(v.Get()), float32(to), float32(d.Seconds()), fn)
		var t *frame.Ticker
		t = v.Scheduler().NewTicker(func(f frame.Frame) {
			val, finished := tw.Update(float32(f.Delta.Seconds()))
			v.Set(float64(val))
			if finished {
				t.Stop()
				complete()
			}
		})
		t.Start()
		return t.Stop
	}
}

// Keyframes animates v through each of the given values in sequence,
// splitting the total duration evenly between segments.
func Keyframes(v *value.Value[float64], values []float64, total time.Duration, fn ease.TweenFunc) <-chan struct{} {
	return v.Start(KeyframesDriver(v, values, total, fn))
}

// KeyframesDriver returns a driver that animates v through each value in
// sequence. With no values or a non-positive total duration it commits
// the final value (if any) and completes immediately.
func KeyframesDriver(v *value.Value[float64], values []float64, total time.Duration, fn ease.TweenFunc) value.Driver {
	return func(complete func()) func() {
		if len(values) == 0 || total <= 0 {
			if len(values) > 0 {
				v.Set(values[len(values)-1])
			}
			complete()
			return func() {}
		}
		if fn == nil {
			fn = ease.Linear
		}
		segDuration := float32(total.Seconds()) / float32(len(values))
		index := 0
		tw := gween.New(float32(v.Get()), float32(values[0]), segDuration, fn)
		var t *frame.Ticker
		t = v.Scheduler().NewTicker(func(f frame.Frame) {
			val, finished := tw.Update(float32(f.Delta.Seconds()))
			v.Set(float64(val))
			if !finished {
				return
			}
			index++
			if index >= len(values) {
				t.Stop()
				complete()
				return
			}
			tw = gween.New(val, float32(values[index]), segDuration, fn)
		})
		t.Start()
		return t.Stop
	}
}
