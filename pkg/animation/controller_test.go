package animation

import (
	"testing"
	"time"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
	StepTickers()
}

func withStepClock(t *testing.T) *stepClock {
	t.Helper()
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

func TestController_CompletesOnTarget(t *testing.T) {
	clk := withStepClock(t)
	c := NewController(250 * time.Millisecond)
	defer c.Dispose()

	var outcomes []Outcome
	c.AnimateTo(280, EaseOut, func(o Outcome) { outcomes = append(outcomes, o) })
	if c.Status() != StatusForward {
		t.Fatalf("status = %v, want forward", c.Status())
	}

	clk.advance(100 * time.Millisecond)
	mid := c.Value()
	if mid <= 0 || mid >= 280 {
		t.Errorf("mid-flight value = %v, want strictly between 0 and 280", mid)
	}

	clk.advance(200 * time.Millisecond)
	if c.Value() != 280 {
		t.Errorf("final value = %v, want exactly 280", c.Value())
	}
	if len(outcomes) != 1 || outcomes[0] != Completed {
		t.Errorf("outcomes = %v, want [completed]", outcomes)
	}
	if c.IsAnimating() {
		t.Error("expected controller to be idle after completion")
	}

	clk.advance(100 * time.Millisecond)
	if len(outcomes) != 1 {
		t.Errorf("outcome reported %d times, want once", len(outcomes))
	}
}

func TestController_RetargetIsContinuous(t *testing.T) {
	clk := withStepClock(t)
	c := NewController(200 * time.Millisecond)
	defer c.Dispose()

	var first, second []Outcome
	c.AnimateTo(100, Linear, func(o Outcome) { first = append(first, o) })
	clk.advance(100 * time.Millisecond)

	at := c.Value()
	if at < 49 || at > 51 {
		t.Fatalf("value at half time = %v, want ~50", at)
	}

	c.AnimateTo(0, Linear, func(o Outcome) { second = append(second, o) })
	if len(first) != 1 || first[0] != Interrupted {
		t.Fatalf("first outcomes = %v, want [interrupted]", first)
	}
	if c.Value() != at {
		t.Errorf("retarget jumped from %v to %v", at, c.Value())
	}
	if c.Status() != StatusReverse {
		t.Errorf("status = %v, want reverse", c.Status())
	}

	clk.advance(50 * time.Millisecond)
	if got := c.Value(); got >= at || got <= 0 {
		t.Errorf("value after retarget = %v, want between 0 and %v", got, at)
	}

	clk.advance(200 * time.Millisecond)
	if c.Value() != 0 {
		t.Errorf("final value = %v, want 0", c.Value())
	}
	if len(first) != 1 {
		t.Errorf("superseded run reported %d outcomes, want 1", len(first))
	}
	if len(second) != 1 || second[0] != Completed {
		t.Errorf("second outcomes = %v, want [completed]", second)
	}
}

func TestController_JumpInterrupts(t *testing.T) {
	clk := withStepClock(t)
	c := NewController(time.Second)
	defer c.Dispose()

	var got []Outcome
	var values []float64
	c.AddListener(func(v float64) { values = append(values, v) })
	c.AnimateTo(10, Linear, func(o Outcome) { got = append(got, o) })
	c.Jump(42)
	clk.advance(2 * time.Second)

	if c.Value() != 42 {
		t.Errorf("value = %v, want 42", c.Value())
	}
	if len(got) != 1 || got[0] != Interrupted {
		t.Errorf("outcomes = %v, want [interrupted]", got)
	}
	if len(values) != 1 || values[0] != 42 {
		t.Errorf("listener values = %v, want [42]", values)
	}
	if HasActiveTickers() {
		t.Error("expected no active tickers after jump")
	}
}

func TestController_ZeroDurationCompletesOnNextFrame(t *testing.T) {
	clk := withStepClock(t)
	c := NewController(0)
	defer c.Dispose()

	done := false
	c.AnimateTo(5, nil, func(o Outcome) { done = o == Completed })
	if done {
		t.Fatal("zero-duration run completed synchronously")
	}
	clk.advance(0)
	if !done || c.Value() != 5 {
		t.Errorf("done=%v value=%v, want completed at 5", done, c.Value())
	}
}

func TestCurves(t *testing.T) {
	curves := map[string]Curve{
		"linear":    Linear,
		"easeIn":    EaseIn,
		"easeOut":   EaseOut,
		"easeInOut": EaseInOut,
	}
	for name, curve := range curves {
		if curve(0) != 0 || curve(1) != 1 {
			t.Errorf("%s endpoints = (%v, %v), want (0, 1)", name, curve(0), curve(1))
		}
		prev := 0.0
		for i := 1; i <= 20; i++ {
			v := curve(float64(i) / 20)
			if v+1e-6 < prev {
				t.Errorf("%s not monotonic at %d: %v < %v", name, i, v, prev)
			}
			prev = v
		}
	}

	if EaseOut(0.5) <= 0.5 {
		t.Errorf("EaseOut(0.5) = %v, want > 0.5", EaseOut(0.5))
	}
	if EaseIn(0.5) >= 0.5 {
		t.Errorf("EaseIn(0.5) = %v, want < 0.5", EaseIn(0.5))
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusIdle, "idle"},
		{StatusForward, "forward"},
		{StatusReverse, "reverse"},
		{Status(9), "Status(9)"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
