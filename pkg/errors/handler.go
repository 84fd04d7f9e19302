package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// DefaultHandler receives every drawer error and recovered delegate panic.
// Replace it with SetHandler; a CLI typically routes it to slog.
var DefaultHandler ErrorHandler = &LogHandler{}

var handlerMu sync.RWMutex

// SetHandler installs h as the destination for drawer errors. nil restores
// a quiet stderr LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func currentHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Report delivers a drawer error, such as a rejected attach or an invalid
// config, to the installed handler.
func Report(err *DrawerError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	if h := currentHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic delivers a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	if h := currentHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Fatal reports err with a stack trace and panics with it. The controller
// uses it when geometry is missing or invalid, since a drawer without a
// measured container cannot position anything.
func Fatal(err *DrawerError) {
	if err.StackTrace == "" {
		err.StackTrace = CaptureStack()
	}
	Report(err)
	panic(err)
}

// Recover turns a panic in a host callback into a reported PanicError so
// the state machine keeps running. It must be deferred directly:
//
//	defer errors.Recover("drawer.DidChangeTo")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the goroutine's stack starting at the caller of the
// function that called CaptureStack.
func CaptureStack() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var frame runtime.Frame
		frame, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
	}
	return sb.String()
}
