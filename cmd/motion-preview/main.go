// Command motion-preview animates a value through a named transition on
// a real-time frame loop and prints sampled frames, for eyeballing
// preset tuning from the terminal.
//
// Usage:
//
//	motion-preview -transition pop -from 0 -to 100
//	motion-preview -config motion.yaml -transition fade -fps 30
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-motion/motion/pkg/frame"
	"github.com/go-motion/motion/pkg/preset"
	"github.com/go-motion/motion/pkg/value"
)

func main() {
	var (
		transition = flag.String("transition", "pop", "transition name to preview")
		configPath = flag.String("config", "", "path to a preset file (defaults to built-ins)")
		from       = flag.Float64("from", 0, "starting value")
		to         = flag.Float64("to", 100, "target value")
		fps        = flag.Int("fps", 60, "frame rate of the preview loop")
		timeout    = flag.Duration("timeout", 10*time.Second, "give up if the transition has not settled")
	)
	flag.Parse()

	if err := run(*transition, *configPath, *from, *to, *fps, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "motion-preview: %v\n", err)
		os.Exit(1)
	}
}

func run(name, configPath string, from, to float64, fps int, timeout time.Duration) error {
	presets := preset.Defaults()
	if configPath != "" {
		loaded, err := preset.Load(configPath)
		if err != nil {
			return err
		}
		presets = loaded
	}

	tr, ok := presets.Transition(name)
	if !ok {
		return fmt.Errorf("unknown transition %q", name)
	}
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	v := value.New(from)
	start := time.Now()
	unsubscribe := v.OnRenderRequest(func(current float64) {
		fmt.Printf("t=%8s  value=%9.3f  velocity=%10.3f/s\n",
			time.Since(start).Round(time.Millisecond), current, v.Velocity())
	})
	defer unsubscribe()

	done := tr.Animate(v, to)

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case now := <-ticker.C:
			frame.Step(now)
		case <-done:
			fmt.Printf("settled at %.3f after %s\n", v.Get(), time.Since(start).Round(time.Millisecond))
			return nil
		case <-deadline.C:
			v.Stop()
			return fmt.Errorf("transition %q did not settle within %s", name, timeout)
		}
	}
}
