package drawer

import (
	"fmt"
	"time"

	"github.com/go-drift/sidedrawer/pkg/animation"
)

// DefaultDuration is the length of every animated transition.
const DefaultDuration = 250 * time.Millisecond

// Direction is the sense of an animated transition.
type Direction int

const (
	// Enter reveals the side pane. It eases out: fast start, gentle arrival.
	Enter Direction = iota
	// Exit hides the side pane. It eases in: gentle start, brisk departure.
	Exit
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Enter:
		return "enter"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Curve returns the easing curve for the direction.
func (d Direction) Curve() animation.Curve {
	if d == Enter {
		return animation.EaseOut
	}
	return animation.EaseIn
}

// TransitionAnimator owns the side pane's reveal offset and shadow opacity
// whenever no drag is live.
//
// Position and shadow run on separate controllers that share a duration. The
// shadow always moves linearly, independent of the position curve.
type TransitionAnimator struct {
	position *animation.Controller
	shadow   *animation.Controller
}

// NewTransitionAnimator creates an animator at offset 0 with no shadow.
func NewTransitionAnimator(duration time.Duration) *TransitionAnimator {
	return &TransitionAnimator{
		position: animation.NewController(duration),
		shadow:   animation.NewController(duration),
	}
}

// Offset returns the current, possibly mid-flight, reveal offset.
func (a *TransitionAnimator) Offset() float64 {
	return a.position.Value()
}

// ShadowOpacity returns the current shadow opacity.
func (a *TransitionAnimator) ShadowOpacity() float64 {
	return a.shadow.Value()
}

// IsAnimating reports whether a position animation is in flight.
func (a *TransitionAnimator) IsAnimating() bool {
	return a.position.IsAnimating()
}

// OnOffset registers fn for every offset change. Returns an unsubscribe function.
func (a *TransitionAnimator) OnOffset(fn func(offset float64)) func() {
	return a.position.AddListener(fn)
}

// OnShadow registers fn for every shadow opacity change.
func (a *TransitionAnimator) OnShadow(fn func(opacity float64)) func() {
	return a.shadow.AddListener(fn)
}

// Animate moves the offset from wherever it is now to target. When
// animateShadow is set the shadow opacity moves to shadowTarget over the same
// duration. Any animation in flight is superseded and reports Interrupted to
// its own done; done receives this run's outcome.
func (a *TransitionAnimator) Animate(target float64, dir Direction, shadowTarget float64, animateShadow bool, done func(animation.Outcome)) {
	if animateShadow {
		a.shadow.AnimateTo(shadowTarget, animation.Linear, nil)
	}
	a.position.AnimateTo(target, dir.Curve(), done)
}

// Interrupt stops both animations where they are.
func (a *TransitionAnimator) Interrupt() {
	a.position.Stop()
	a.shadow.Stop()
}

// Jump sets the offset immediately, interrupting any position animation.
func (a *TransitionAnimator) Jump(offset float64) {
	a.position.Jump(offset)
}

// SetShadow sets the shadow opacity immediately.
func (a *TransitionAnimator) SetShadow(opacity float64) {
	a.shadow.Jump(opacity)
}

// Dispose stops both animations and drops listeners.
func (a *TransitionAnimator) Dispose() {
	a.position.Dispose()
	a.shadow.Dispose()
}
