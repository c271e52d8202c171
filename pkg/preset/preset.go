// Package preset loads named transition definitions from YAML.
//
// A preset file maps transition names to tween, spring, or keyframes
// configurations:
//
//	transitions:
//	  fade:
//	    type: tween
//	    duration: 300ms
//	    ease: easeInOut
//	  pop:
//	    type: spring
//	    frequency: 7.5
//	    damping: 0.6
//
// Resolved transitions start animation drivers on motion values via
// [Transition.Animate].
package preset

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-motion/motion/pkg/animate"
	"github.com/go-motion/motion/pkg/errors"
	"github.com/go-motion/motion/pkg/value"
)

// FileName is the preset file LoadOptional looks for.
const FileName = "motion.yaml"

// Transition types.
const (
	TypeTween     = "tween"
	TypeSpring    = "spring"
	TypeKeyframes = "keyframes"
)

// Duration wraps time.Duration so YAML can use "300ms" syntax.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Transition describes how a value animates to a target.
type Transition struct {
	// Type is "tween", "spring", or "keyframes".
	Type string `yaml:"type"`
	// Duration applies to tween and keyframes transitions.
	Duration Duration `yaml:"duration,omitempty"`
	// Ease names an easing curve (see animate.CurveByName).
	Ease string `yaml:"ease,omitempty"`
	// Frequency and Damping apply to spring transitions.
	Frequency float64 `yaml:"frequency,omitempty"`
	Damping   float64 `yaml:"damping,omitempty"`
	// Values are the intermediate stops of a keyframes transition; the
	// animation target is appended as the final stop.
	Values []float64 `yaml:"values,omitempty"`
}

// File is a parsed preset file.
type File struct {
	Transitions map[string]Transition `yaml:"transitions"`
}

// Transition looks up a named transition.
func (f *File) Transition(name string) (Transition, bool) {
	t, ok := f.Transitions[name]
	return t, ok
}

// Parse decodes and validates preset data.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &errors.MotionError{
			Op:   "preset.Parse",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}
	for name, t := range f.Transitions {
		if err := t.validate(); err != nil {
			return nil, &errors.MotionError{
				Op:   "preset.Parse",
				Kind: errors.KindConfig,
				Err:  fmt.Errorf("transition %q: %w", name, err),
			}
		}
	}
	return &f, nil
}

func (t Transition) validate() error {
	switch t.Type {
	case TypeTween, TypeKeyframes:
		if t.Duration <= 0 {
			return fmt.Errorf("%s transitions need a positive duration", t.Type)
		}
		if _, ok := animate.CurveByName(t.Ease); !ok {
			return fmt.Errorf("unknown ease %q", t.Ease)
		}
	case TypeSpring:
		if t.Frequency < 0 || t.Damping < 0 {
			return fmt.Errorf("spring frequency and damping must not be negative")
		}
	default:
		return fmt.Errorf("unknown transition type %q", t.Type)
	}
	return nil
}

// Load reads and parses a preset file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.MotionError{
			Op:   "preset.Load",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}
	return Parse(data)
}

// LoadOptional reads motion.yaml from dir if present, falling back to
// the built-in defaults when the file does not exist.
func LoadOptional(dir string) (*File, error) {
	f, err := Load(filepath.Join(dir, FileName))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, err
	}
	return f, nil
}

// Defaults returns the built-in named transitions.
func Defaults() *File {
	return &File{Transitions: map[string]Transition{
		"fade":   {Type: TypeTween, Duration: Duration(300 * time.Millisecond), Ease: "easeInOut"},
		"slide":  {Type: TypeTween, Duration: Duration(250 * time.Millisecond), Ease: "easeOut"},
		"pop":    {Type: TypeSpring, Frequency: 7.5, Damping: 0.6},
		"gentle": {Type: TypeSpring, Frequency: 5, Damping: 1},
	}}
}

// Animate starts this transition on a value toward the target and
// returns the completion channel. The transition must be valid; unknown
// types fall back to an immediate tween to the target.
func (t Transition) Animate(v *value.Value[float64], to float64) <-chan struct{} {
	switch t.Type {
	case TypeSpring:
		return animate.Spring(v, to, animate.SpringConfig{
			Frequency: t.Frequency,
			Damping:   t.Damping,
		})
	case TypeKeyframes:
		stops := make([]float64, 0, len(t.Values)+1)
		stops = append(stops, t.Values...)
		stops = append(stops, to)
		fn, _ := animate.CurveByName(t.Ease)
		return animate.Keyframes(v, stops, time.Duration(t.Duration), fn)
	default:
		fn, _ := animate.CurveByName(t.Ease)
		return animate.Tween(v, to, time.Duration(t.Duration), fn)
	}
}
