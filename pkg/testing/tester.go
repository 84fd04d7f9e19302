package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/sidedrawer/pkg/animation"
	"github.com/go-drift/sidedrawer/pkg/drawer"
	"github.com/go-drift/sidedrawer/pkg/graphics"
)

const (
	// DefaultTestWidth is the default container width.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default container height.
	DefaultTestHeight = 600
	// FrameDuration is how far the clock moves per settled frame.
	FrameDuration = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: drawer did not settle")

// Option adjusts a DrawerTester before the controller is attached.
type Option func(*DrawerTester)

// WithSize sets the container size the controller is attached with.
func WithSize(size graphics.Size) Option {
	return func(t *DrawerTester) { t.size = size }
}

// WithDirection sets the layout direction the controller is attached with.
func WithDirection(direction drawer.LayoutDirection) Option {
	return func(t *DrawerTester) { t.direction = direction }
}

// DrawerTester drives a SideController with a fake clock, a recording
// renderer and a recording delegate.
type DrawerTester struct {
	Controller *drawer.SideController
	Renderer   *RecordingRenderer
	Delegate   *RecordingDelegate

	clock       *FakeClock
	prevClock   animation.Clock
	size        graphics.Size
	direction   drawer.LayoutDirection
	nextPointer int64
}

// NewDrawerTester creates a controller from cfg and attaches it. When
// cfg.Renderer is nil a RecordingRenderer is installed. Call Cleanup when
// done, or use NewDrawerTesterWithT instead.
func NewDrawerTester(cfg drawer.Config, opts ...Option) (*DrawerTester, error) {
	t := &DrawerTester{
		Delegate:  &RecordingDelegate{},
		clock:     NewFakeClock(),
		size:      graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		direction: drawer.LeftToRight,
	}
	for _, opt := range opts {
		opt(t)
	}
	if cfg.Renderer == nil {
		t.Renderer = &RecordingRenderer{}
		cfg.Renderer = t.Renderer
	} else if r, ok := cfg.Renderer.(*RecordingRenderer); ok {
		t.Renderer = r
	}

	t.prevClock = animation.SetClock(t.clock)
	c, err := drawer.New(cfg)
	if err != nil {
		animation.SetClock(t.prevClock)
		return nil, err
	}
	t.Controller = c
	c.AddObserver(t.Delegate)
	c.Attach(t.size, t.direction)
	return t, nil
}

// NewDrawerTesterWithT creates a tester that cleans up via t.Cleanup and
// fails the test if cfg is invalid.
func NewDrawerTesterWithT(t testing.TB, cfg drawer.Config, opts ...Option) *DrawerTester {
	t.Helper()
	tester, err := NewDrawerTester(cfg, opts...)
	if err != nil {
		t.Fatalf("NewDrawerTester: %v", err)
	}
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup disposes the controller and restores the animation clock.
func (t *DrawerTester) Cleanup() {
	if t.Controller != nil {
		t.Controller.Dispose()
	}
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock for advancing time in tests.
func (t *DrawerTester) Clock() *FakeClock {
	return t.clock
}

// Size returns the container size the controller was attached with.
func (t *DrawerTester) Size() graphics.Size {
	return t.size
}

// Pump runs a single frame without advancing the clock.
func (t *DrawerTester) Pump() {
	animation.StepTickers()
}

// Advance moves the clock forward by d and runs a frame.
func (t *DrawerTester) Advance(d time.Duration) {
	t.clock.Advance(d)
	animation.StepTickers()
}

// PumpAndSettle runs frames until no animation is in flight or the timeout
// is reached. Each frame advances the fake clock by FrameDuration.
func (t *DrawerTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !animation.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}
