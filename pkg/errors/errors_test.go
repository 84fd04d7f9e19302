package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestDrawerErrorString(t *testing.T) {
	err := &DrawerError{
		Op:   "drawer.ShowSide",
		Kind: KindGeometry,
		Err:  ErrNotAttached,
	}
	got := err.Error()
	want := "drawer.ShowSide [geometry]: drawer is not attached to a container"
	if got != want {
		t.Errorf("DrawerError.Error() = %q, want %q", got, want)
	}
	if !Is(err, ErrNotAttached) {
		t.Error("expected DrawerError to unwrap to ErrNotAttached")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindGeometry, "geometry"},
		{KindConfig, "config"},
		{KindGesture, "gesture"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestIsKind(t *testing.T) {
	inner := &DrawerError{Op: "config.Resolve", Kind: KindConfig, Err: &FieldError{Field: "side_width", Value: -1, Reason: "must be positive"}}
	wrapped := fmt.Errorf("loading: %w", inner)
	if !IsKind(wrapped, KindConfig) {
		t.Error("expected wrapped error to match KindConfig")
	}
	if IsKind(wrapped, KindGeometry) {
		t.Error("did not expect wrapped error to match KindGeometry")
	}
	var fe *FieldError
	if !As(wrapped, &fe) || fe.Field != "side_width" {
		t.Errorf("As(FieldError) = %+v", fe)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "drawer.notifyDidChange"
	if got, want := err.Error(), "panic in drawer.notifyDidChange: boom"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *DrawerError
	handler := &testHandler{onError: func(err *DrawerError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&DrawerError{Op: "test.op", Kind: KindConfig, Err: New("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestFatalReportsThenPanics(t *testing.T) {
	var captured *DrawerError
	handler := &testHandler{onError: func(err *DrawerError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		Fatal(&DrawerError{Op: "drawer.Attach", Kind: KindGeometry, Err: ErrNotAttached})
	}()

	if captured == nil {
		t.Fatal("expected Fatal to report before panicking")
	}
	de, ok := recovered.(*DrawerError)
	if !ok || de != captured {
		t.Fatalf("recovered %T, want the reported *DrawerError", recovered)
	}
	if de.StackTrace == "" {
		t.Error("expected stack trace to be captured")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Fatal("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&DrawerError{Op: "config.Load", Kind: KindConfig, Err: New("bad yaml")})
	h.HandlePanic(&PanicError{Op: "drawer.notify", Value: "boom"})

	out := buf.String()
	for _, want := range []string{
		"[sidedrawer error] config.Load: bad yaml",
		"[sidedrawer panic] drawer.notify: boom",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

func TestSlogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewSlogHandler(slog.New(slog.NewTextHandler(&buf, nil)))
	h.HandleError(&DrawerError{Op: "drawer.Attach", Kind: KindGeometry, Err: ErrNotAttached})

	out := buf.String()
	for _, want := range []string{"level=ERROR", "op=drawer.Attach", "kind=geometry"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}

type testHandler struct {
	onError func(*DrawerError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *DrawerError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
