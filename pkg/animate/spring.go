package animate

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/go-motion/motion/pkg/frame"
	"github.com/go-motion/motion/pkg/value"
)

const (
	defaultFrequency = 6.0
	defaultDamping   = 0.8

	// Rest thresholds: the spring settles once both the distance to the
	// target and the speed drop below these.
	defaultRestDelta = 0.01
	defaultRestSpeed = 0.01
)

// SpringConfig tunes a physics spring.
type SpringConfig struct {
	// Frequency is the angular frequency in radians per second; higher
	// is stiffer. Defaults to 6.0.
	Frequency float64
	// Damping is the damping ratio: below 1 oscillates, 1 is critically
	// damped, above 1 is overdamped. Defaults to 0.8.
	Damping float64
	// RestDelta and RestSpeed override the settle thresholds.
	RestDelta float64
	RestSpeed float64
}

// Spring animates v to the target with spring physics, seeding the
// spring's initial velocity from the value's tracked velocity.
func Spring(v *value.Value[float64], target float64, cfg SpringConfig) <-chan struct{} {
	return v.Start(SpringDriver(v, target, cfg))
}

// SpringDriver returns a driver that settles v at the target. On
// settling it commits exactly the target value before completing.
func SpringDriver(v *value.Value[float64], target float64, cfg SpringConfig) value.Driver {
	return func(complete func()) func() {
		freq := cfg.Frequency
		if freq <= 0 {
			freq = defaultFrequency
		}
		damping := cfg.Damping
		if damping <= 0 {
			damping = defaultDamping
		}
		restDelta := cfg.RestDelta
		if restDelta <= 0 {
			restDelta = defaultRestDelta
		}
		restSpeed := cfg.RestSpeed
		if restSpeed <= 0 {
			restSpeed = defaultRestSpeed
		}

		// harmonica precomputes its coefficients for a fixed step size,
		// so the spring integrates at 60 steps per second regardless of
		// the wall-clock frame rate.
		spring := harmonica.NewSpring(harmonica.FPS(60), freq, damping)
		pos := v.Get()
		vel := v.Velocity()

		var t *frame.Ticker
		t = v.Scheduler().NewTicker(func(frame.Frame) {
			pos, vel = spring.Update(pos, vel, target)
			if math.Abs(pos-target) <= restDelta && math.Abs(vel) <= restSpeed {
				t.Stop()
				v.Set(target)
				complete()
				return
			}
			v.Set(pos)
		})
		t.Start()
		return t.Stop
	}
}
