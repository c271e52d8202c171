// Package errors provides structured error handling for the motion library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a transition preset or configuration error.
	KindConfig
	// KindDriver indicates an animation driver failure.
	KindDriver
	// KindClock indicates a frame clock or scheduling error.
	KindClock
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindDriver:
		return "driver"
	case KindClock:
		return "clock"
	default:
		return "unknown"
	}
}

// MotionError represents a structured error in the motion library.
type MotionError struct {
	// Op is the operation that failed (e.g., "preset.Parse").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MotionError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *MotionError) Unwrap() error {
	return e.Err
}

// PanicError represents a panic recovered from a frame callback.
type PanicError struct {
	// Op is the operation that panicked (e.g., "frame.FlushPostRender").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by the motion library.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *MotionError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
