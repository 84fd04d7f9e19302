package animation

import (
	"fmt"
	"time"
)

// Status represents what a controller is currently doing.
//
//	          AnimateTo(higher)
//	Idle ─────────────────────► Forward ──┐
//	  ▲       AnimateTo(lower)            │ completed, stopped,
//	  ├───────────────────────► Reverse ──┤ or superseded
//	  └───────────────────────────────────┘
type Status int

const (
	// StatusIdle means the value is at rest.
	StatusIdle Status = iota
	// StatusForward means the value is animating toward a higher target.
	StatusForward
	// StatusReverse means the value is animating toward a lower target.
	StatusReverse
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is how a single animation run ended.
type Outcome int

const (
	// Completed means the value reached the target.
	Completed Outcome = iota
	// Interrupted means the run was stopped or superseded before reaching it.
	Interrupted
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Interrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Controller tweens a float64 value toward a target over Duration.
//
// Each call to AnimateTo begins a new run starting at the current value, so
// retargeting mid-flight is continuous. Every run reports its Outcome exactly
// once: Completed when the value lands on the target, Interrupted when a later
// AnimateTo, Stop, or Jump supersedes it.
//
// A Controller is not safe for concurrent use; drive it from a single event
// loop.
type Controller struct {
	// Duration is the length of every run.
	Duration time.Duration

	value     float64
	start     float64
	target    float64
	curve     Curve
	status    Status
	ticker    *Ticker
	run       uint64
	onDone    func(Outcome)
	listeners map[int]func(float64)
	nextID    int
}

// NewController creates an idle controller at value 0.
func NewController(duration time.Duration) *Controller {
	return &Controller{
		Duration:  duration,
		listeners: make(map[int]func(float64)),
	}
}

// Value returns the current, possibly mid-flight, value.
func (c *Controller) Value() float64 {
	return c.value
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating reports whether a run is in flight.
func (c *Controller) IsAnimating() bool {
	return c.status != StatusIdle
}

// Run returns a counter that increments on every AnimateTo, Stop, and Jump.
func (c *Controller) Run() uint64 {
	return c.run
}

// AnimateTo starts a run from the current value to target, shaped by curve
// (Linear when nil). Any run in flight is interrupted first. done, when
// non-nil, receives this run's outcome.
func (c *Controller) AnimateTo(target float64, curve Curve, done func(Outcome)) {
	c.interrupt()
	if c.ticker != nil {
		// An interrupted callback restarted the controller; this call wins.
		c.ticker.Stop()
	}

	if curve == nil {
		curve = Linear
	}
	c.start = c.value
	c.target = target
	c.curve = curve
	c.onDone = done
	if target >= c.value {
		c.status = StatusForward
	} else {
		c.status = StatusReverse
	}

	run := c.run
	c.ticker = NewTicker(func(elapsed time.Duration) {
		c.tick(run, elapsed)
	})
	c.ticker.Start()
}

// Stop halts the run in flight at its current value and reports Interrupted.
func (c *Controller) Stop() {
	c.interrupt()
}

// Jump interrupts any run and sets the value immediately.
func (c *Controller) Jump(value float64) {
	c.interrupt()
	c.target = value
	c.setValue(value)
}

// AddListener registers fn to receive every value change.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func(float64)) func() {
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// Dispose interrupts any run and drops all listeners.
func (c *Controller) Dispose() {
	c.interrupt()
	c.listeners = make(map[int]func(float64))
}

func (c *Controller) tick(run uint64, elapsed time.Duration) {
	if run != c.run {
		return
	}

	progress := 1.0
	if c.Duration > 0 {
		progress = float64(elapsed) / float64(c.Duration)
	}
	if progress >= 1 {
		// Land exactly on the target instead of trusting the interpolation.
		c.setValue(c.target)
		c.finish(Completed)
		return
	}
	c.setValue(LerpFloat64(c.start, c.target, c.curve(progress)))
}

// interrupt ends the run in flight, if any, and bumps the run counter so
// stale ticks are ignored.
func (c *Controller) interrupt() {
	if c.status != StatusIdle {
		c.finish(Interrupted)
	}
	c.run++
}

func (c *Controller) finish(outcome Outcome) {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.status = StatusIdle
	done := c.onDone
	c.onDone = nil
	if done != nil {
		done(outcome)
	}
}

func (c *Controller) setValue(v float64) {
	if c.value == v {
		return
	}
	c.value = v
	for _, listener := range c.listeners {
		listener(v)
	}
}
