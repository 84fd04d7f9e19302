// Package errors provides structured error reporting for the side drawer.
//
// The drawer has no recoverable runtime errors: transitions are always legal
// and ignored gestures are not failures. What remains is reported here:
// contract violations at attach time (fatal), configuration problems, and
// panics recovered from host callbacks.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindGeometry indicates missing or invalid host-provided geometry.
	KindGeometry
	// KindConfig indicates an invalid drawer configuration.
	KindConfig
	// KindGesture indicates a malformed gesture script or event.
	KindGesture
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindGeometry:
		return "geometry"
	case KindConfig:
		return "config"
	case KindGesture:
		return "gesture"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DrawerError represents a structured error raised by the drawer.
type DrawerError struct {
	// Op is the operation that failed (e.g., "drawer.ShowSide").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *DrawerError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DrawerError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "drawer.notifyDidChange").
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

// FieldError reports an invalid value for a named configuration field.
type FieldError struct {
	// Field is the dotted path of the field (e.g., "background.shadow.opacity").
	Field string
	// Value is the offending value.
	Value any
	// Reason explains the constraint that was violated.
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Reason, e.Value)
}

// ErrNotAttached is wrapped by geometry errors raised before the drawer is
// attached to a measured container.
var ErrNotAttached = errors.New("drawer is not attached to a container")

// IsKind reports whether err wraps a DrawerError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *DrawerError
	return errors.As(err, &de) && de.Kind == kind
}

// Is forwards to the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As forwards to the standard library so callers need a single import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New forwards to the standard library so callers need a single import.
func New(text string) error {
	return errors.New(text)
}

// ErrorHandler receives errors reported by the drawer.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *DrawerError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
