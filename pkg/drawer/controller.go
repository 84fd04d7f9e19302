package drawer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-drift/sidedrawer/pkg/animation"
	"github.com/go-drift/sidedrawer/pkg/errors"
	"github.com/go-drift/sidedrawer/pkg/gestures"
	"github.com/go-drift/sidedrawer/pkg/graphics"
)

// Config is the construction-time configuration of a SideController.
type Config struct {
	// Front and Side are host view handles passed through to the Renderer.
	Front Pane
	Side  Pane

	// SideWidth is the width of the side pane. Required, must be positive.
	SideWidth float64
	// Background selects how the side pane is composited. Required.
	Background Background
	// Border is the inner-edge border. Nil draws DefaultBorder.
	Border *Border

	// SpeedThreshold gates velocity-based drag resolution, in px/s.
	// Zero means DefaultSpeedThreshold.
	SpeedThreshold float64
	// Duration is the length of animated transitions. Zero means DefaultDuration.
	Duration time.Duration

	// Renderer receives visual updates. Nil means NopRenderer.
	Renderer Renderer
	// Logger receives debug logs for transitions. Nil discards them.
	Logger *slog.Logger
}

func (cfg Config) withDefaults() (Config, error) {
	if !(cfg.SideWidth > 0) || math.IsInf(cfg.SideWidth, 0) {
		return cfg, &errors.FieldError{Field: "SideWidth", Value: cfg.SideWidth, Reason: "must be positive and finite"}
	}
	if cfg.SpeedThreshold < 0 || math.IsNaN(cfg.SpeedThreshold) {
		return cfg, &errors.FieldError{Field: "SpeedThreshold", Value: cfg.SpeedThreshold, Reason: "must not be negative"}
	}
	if cfg.SpeedThreshold == 0 {
		cfg.SpeedThreshold = DefaultSpeedThreshold
	}
	if cfg.Duration < 0 {
		return cfg, &errors.FieldError{Field: "Duration", Value: cfg.Duration, Reason: "must not be negative"}
	}
	if cfg.Duration == 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.Renderer == nil {
		cfg.Renderer = NopRenderer{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return cfg, nil
}

// SideController presents a front pane and a side pane that slides in from
// the leading edge.
//
// Create one with New, then Attach it once the container has been measured.
// All methods must be called from the host's event loop.
type SideController struct {
	cfg        Config
	geometry   GeometryConfig
	height     float64
	attached   bool
	appearance Appearance

	observers observers
	machine   *StateMachine
	animator  *TransitionAnimator
	gestures  *GestureCoordinator

	frontInteractive bool
	unsubscribe      []func()
}

// New validates cfg and creates a controller in the Front state.
func New(cfg Config) (*SideController, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, &errors.DrawerError{Op: "drawer.New", Kind: errors.KindConfig, Err: err}
	}
	appearance, err := resolveAppearance(cfg.Background, cfg.Border, LeftToRight)
	if err != nil {
		return nil, &errors.DrawerError{Op: "drawer.New", Kind: errors.KindConfig, Err: err}
	}

	c := &SideController{
		cfg:              cfg,
		geometry:         GeometryConfig{SideWidth: cfg.SideWidth},
		appearance:       appearance,
		animator:         NewTransitionAnimator(cfg.Duration),
		frontInteractive: true,
	}
	c.machine = newStateMachine(&c.observers, c.performTransition, c.enterState, cfg.Logger)
	c.gestures = newGestureCoordinator(c)
	return c, nil
}

// Attach binds the controller to a measured container. It may be called
// again whenever the container size or layout direction changes; the
// anchors are recomputed and a resting side pane snaps to its new anchor.
//
// A non-positive container width is a fatal contract violation.
func (c *SideController) Attach(size graphics.Size, direction LayoutDirection) {
	geometry := GeometryConfig{
		ContainerWidth: size.Width,
		SideWidth:      c.cfg.SideWidth,
		Direction:      direction,
	}
	if err := geometry.Validate(); err != nil {
		errors.Fatal(&errors.DrawerError{Op: "drawer.Attach", Kind: errors.KindGeometry, Err: err})
	}
	appearance, err := resolveAppearance(c.cfg.Background, c.cfg.Border, direction)
	if err != nil {
		errors.Fatal(&errors.DrawerError{Op: "drawer.Attach", Kind: errors.KindConfig, Err: err})
	}

	first := !c.attached
	c.geometry = geometry
	c.height = size.Height
	c.appearance = appearance
	c.attached = true

	if first {
		c.cfg.Renderer.Mount(c.cfg.Front, c.cfg.Side, appearance)
		c.unsubscribe = append(c.unsubscribe,
			c.animator.OnOffset(func(offset float64) {
				c.cfg.Renderer.SetSidePosition(c.geometry.PositionFor(offset))
			}),
			c.animator.OnShadow(c.cfg.Renderer.SetShadowOpacity),
		)
		c.cfg.Renderer.SetShadowOpacity(0)
		c.cfg.Renderer.SetFrontInteractive(c.frontInteractive)
	} else {
		c.cfg.Renderer.ApplyAppearance(appearance)
	}
	c.cfg.Renderer.SetSidePosition(c.Position())
}

// SetContainerSize re-attaches with a new size and the current direction.
func (c *SideController) SetContainerSize(size graphics.Size) {
	c.Attach(size, c.geometry.Direction)
}

// IsAttached reports whether Attach has been called.
func (c *SideController) IsAttached() bool {
	return c.attached
}

// ShowFront animates the side pane out.
func (c *SideController) ShowFront() {
	c.mustBeAttached("drawer.ShowFront")
	c.machine.RequestTransition(Front)
}

// ShowSide animates the side pane in.
func (c *SideController) ShowSide() {
	c.mustBeAttached("drawer.ShowSide")
	c.machine.RequestTransition(Side)
}

// IsSideVisible reports whether the controller is in the Side state.
func (c *SideController) IsSideVisible() bool {
	return c.machine.State() == Side
}

// State returns the current presentation state.
func (c *SideController) State() Presenting {
	return c.machine.State()
}

// HandlePointer feeds one pointer event, in container coordinates, to the
// drawer's gesture recognizers.
func (c *SideController) HandlePointer(event gestures.PointerEvent) {
	c.mustBeAttached("drawer.HandlePointer")
	c.gestures.HandlePointer(event)
}

// IsDragging reports whether a drag currently owns the side pane.
func (c *SideController) IsDragging() bool {
	return c.gestures.IsDragging()
}

// IsAnimating reports whether a transition animation is in flight.
func (c *SideController) IsAnimating() bool {
	return c.animator.IsAnimating()
}

// Offset returns how far the side pane is revealed, in [0, SideWidth].
func (c *SideController) Offset() float64 {
	return c.animator.Offset()
}

// Position returns the side pane's right edge in container coordinates.
func (c *SideController) Position() float64 {
	return c.geometry.PositionFor(c.animator.Offset())
}

// ShadowOpacity returns the side pane's current shadow opacity.
func (c *SideController) ShadowOpacity() float64 {
	return c.animator.ShadowOpacity()
}

// Anchors returns the hidden and revealed positions for the current geometry.
func (c *SideController) Anchors() Anchors {
	return Resolve(c.geometry)
}

// Geometry returns the current geometry.
func (c *SideController) Geometry() GeometryConfig {
	return c.geometry
}

// SideBounds returns the side pane's current rectangle.
func (c *SideController) SideBounds() graphics.Rect {
	return c.geometry.SideBounds(c.Position(), c.height)
}

// SideWidth returns the configured side pane width.
func (c *SideController) SideWidth() float64 {
	return c.cfg.SideWidth
}

// SpeedThreshold returns the velocity threshold used to resolve drags.
func (c *SideController) SpeedThreshold() float64 {
	return c.cfg.SpeedThreshold
}

// Appearance returns the resolved styling.
func (c *SideController) Appearance() Appearance {
	return c.appearance
}

// Background returns the configured background.
func (c *SideController) Background() Background {
	return c.cfg.Background
}

// SetBackground replaces the background. Invalid backgrounds are rejected
// and leave the current one in place.
func (c *SideController) SetBackground(bg Background) error {
	appearance, err := resolveAppearance(bg, c.cfg.Border, c.geometry.Direction)
	if err != nil {
		return &errors.DrawerError{Op: "drawer.SetBackground", Kind: errors.KindConfig, Err: err}
	}
	c.cfg.Background = bg
	c.applyAppearance(appearance)
	return nil
}

// Border returns the configured border, or nil when the default is in use.
func (c *SideController) Border() *Border {
	return c.cfg.Border
}

// SetBorder replaces the border. Nil restores DefaultBorder.
func (c *SideController) SetBorder(border *Border) {
	if border != nil {
		b := *border
		border = &b
	}
	c.cfg.Border = border
	appearance, err := resolveAppearance(c.cfg.Background, border, c.geometry.Direction)
	if err != nil {
		// The background was validated when it was set.
		panic(fmt.Sprintf("drawer: resolving appearance: %v", err))
	}
	c.applyAppearance(appearance)
}

// PanEnabled reports whether drags are recognized.
func (c *SideController) PanEnabled() bool {
	return !c.gestures.pan.Disabled
}

// SetPanEnabled enables or disables drag recognition.
func (c *SideController) SetPanEnabled(enabled bool) {
	c.gestures.pan.Disabled = !enabled
}

// TapEnabled reports whether tap-to-dismiss is armed.
func (c *SideController) TapEnabled() bool {
	return c.gestures.tap.Enabled
}

// SetTapEnabled arms or disarms tap-to-dismiss until the next state entry,
// which re-arms it for Side and disarms it for Front.
func (c *SideController) SetTapEnabled(enabled bool) {
	c.gestures.tap.Enabled = enabled
}

// FrontInteractive reports whether the front pane currently accepts input.
func (c *SideController) FrontInteractive() bool {
	return c.frontInteractive
}

// SetDelegate installs the primary delegate. Nil removes it.
func (c *SideController) SetDelegate(d Delegate) {
	c.observers.delegate = d
}

// AddObserver registers an additional delegate, notified after the primary
// one. Returns a function that removes it.
func (c *SideController) AddObserver(d Delegate) func() {
	return c.observers.add(d)
}

// Dispose stops animations and detaches from the renderer.
func (c *SideController) Dispose() {
	for _, unsubscribe := range c.unsubscribe {
		unsubscribe()
	}
	c.unsubscribe = nil
	c.animator.Dispose()
}

func (c *SideController) performTransition(to Presenting, done func(animation.Outcome)) {
	switch to {
	case Front:
		c.animator.Animate(0, Exit, 0, c.appearance.HasShadow, done)
	case Side:
		c.animator.Animate(c.cfg.SideWidth, Enter, c.appearance.Shadow.Opacity, c.appearance.HasShadow, done)
	case Transitioning:
		// The drag takes ownership of the offset from here.
		c.animator.Interrupt()
	}
}

func (c *SideController) enterState(state Presenting) {
	switch state {
	case Front:
		c.gestures.tap.Enabled = false
		c.setFrontInteractive(true)
	case Side:
		c.gestures.tap.Enabled = true
		c.setFrontInteractive(false)
	case Transitioning:
		c.gestures.tap.Enabled = false
	}
}

func (c *SideController) setFrontInteractive(enabled bool) {
	if c.frontInteractive == enabled {
		return
	}
	c.frontInteractive = enabled
	c.cfg.Renderer.SetFrontInteractive(enabled)
}

func (c *SideController) applyAppearance(appearance Appearance) {
	c.appearance = appearance
	if !appearance.HasShadow {
		c.animator.SetShadow(0)
	} else if c.machine.State() == Side {
		c.animator.SetShadow(appearance.Shadow.Opacity)
	}
	if c.attached {
		c.cfg.Renderer.ApplyAppearance(appearance)
	}
}

func (c *SideController) mustBeAttached(op string) {
	if !c.attached {
		errors.Fatal(&errors.DrawerError{Op: op, Kind: errors.KindGeometry, Err: errors.ErrNotAttached})
	}
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying c, so code hosted inside either
// pane can reach the controller that presents it.
func NewContext(ctx context.Context, c *SideController) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the controller stored by NewContext, or nil.
func FromContext(ctx context.Context) *SideController {
	c, _ := ctx.Value(contextKey{}).(*SideController)
	return c
}
