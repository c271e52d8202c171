package animate

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/go-motion/motion/pkg/frame"
	"github.com/go-motion/motion/pkg/paint"
	"github.com/go-motion/motion/pkg/value"
)

// TweenColor animates a color value to the target over the given
// duration, interpolating channelwise.
func TweenColor(v *value.Value[paint.Color], to paint.Color, d time.Duration, fn ease.TweenFunc) <-chan struct{} {
	return v.Start(TweenColorDriver(v, to, d, fn))
}

// TweenColorDriver returns a driver that animates a color value to the
// target. Progress runs through the easing function and maps onto
// paint.Lerp between the starting and target colors.
func TweenColorDriver(v *value.Value[paint.Color], to paint.Color, d time.Duration, fn ease.TweenFunc) value.Driver {
	return func(complete func()) func() {
		if d <= 0 {
			v.Set(to)
			complete()
			return func() {}
		}
		if fn == nil {
			fn = ease.Linear
		}
		from := v.Get()
		tw := gween.New(0, 1, float32(d.Seconds()), fn)
		var t *frame.Ticker
		t = v.Scheduler().NewTicker(func(f frame.Frame) {
			progress, finished := tw.Update(float32(f.Delta.Seconds()))
			v.Set(paint.Lerp(from, to, float64(progress)))
			if finished {
				t.Stop()
				complete()
			}
		})
		t.Start()
		return t.Stop
	}
}
