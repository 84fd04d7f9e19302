package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogHandler is an ErrorHandler that writes errors as plain lines.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out receives the output. Defaults to stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out == nil {
		return os.Stderr
	}
	return h.Out
}

// HandleError logs a DrawerError.
func (h *LogHandler) HandleError(err *DrawerError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[sidedrawer error] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[sidedrawer error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[sidedrawer panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[sidedrawer panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// SlogHandler is an ErrorHandler that forwards to a structured logger.
type SlogHandler struct {
	Logger *slog.Logger
}

// NewSlogHandler wraps logger, falling back to slog.Default when nil.
func NewSlogHandler(logger *slog.Logger) *SlogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogHandler{Logger: logger}
}

// HandleError logs a DrawerError at error level.
func (h *SlogHandler) HandleError(err *DrawerError) {
	if err == nil {
		return
	}
	h.Logger.LogAttrs(context.Background(), slog.LevelError, "drawer error",
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
		slog.Any("err", err.Err),
	)
}

// HandlePanic logs a PanicError at error level with its stack.
func (h *SlogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.Logger.LogAttrs(context.Background(), slog.LevelError, "recovered panic",
		slog.String("op", err.Op),
		slog.Any("value", err.Value),
		slog.String("stack", err.StackTrace),
	)
}
