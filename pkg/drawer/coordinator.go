package drawer

import (
	"github.com/go-drift/sidedrawer/pkg/gestures"
	"github.com/go-drift/sidedrawer/pkg/graphics"
)

// DefaultSpeedThreshold is the horizontal speed, in pixels per second, above
// which a released drag follows its direction of travel regardless of where
// the side pane is.
const DefaultSpeedThreshold = 300.0

// ResolveDragEnd picks the terminal state for a released drag. Rules are
// evaluated in order:
//
//  1. velocity.X > threshold          → Side
//  2. velocity.X < -threshold         → Front
//  3. offset > sideWidth/2            → Side
//  4. otherwise                       → Front
//
// The midpoint itself resolves to Front. Velocity is in drawer space, so
// positive always points toward the revealed anchor.
func ResolveDragEnd(result DragResult, sideWidth, speedThreshold float64) Presenting {
	switch {
	case result.FinalVelocity.X > speedThreshold:
		return Side
	case result.FinalVelocity.X < -speedThreshold:
		return Front
	case result.FinalOffset > sideWidth/2:
		return Side
	default:
		return Front
	}
}

// GestureCoordinator turns pointer streams into drag tracking and state
// transitions for a SideController.
type GestureCoordinator struct {
	c       *SideController
	router  *gestures.Router
	pan     *gestures.PanRecognizer
	tap     *gestures.TapRecognizer
	tracker *DragTracker
}

func newGestureCoordinator(c *SideController) *GestureCoordinator {
	g := &GestureCoordinator{
		c:       c,
		tracker: NewDragTracker(c.cfg.SideWidth),
	}
	g.router = gestures.NewRouter()
	g.pan = gestures.NewPanRecognizer(g.router)
	g.pan.OnStart = g.onDragStart
	g.pan.OnUpdate = g.onDragUpdate
	g.pan.OnEnd = g.onDragEnd
	g.pan.OnCancel = g.onDragCancel
	g.tap = gestures.NewTapRecognizer()
	g.tap.OnTap = g.onTap
	// Tap-to-dismiss is only armed while the side pane is shown.
	g.tap.Enabled = false
	g.router.Add(g.pan)
	g.router.Add(g.tap)
	return g
}

// HandlePointer routes one pointer event.
func (g *GestureCoordinator) HandlePointer(event gestures.PointerEvent) {
	g.router.Dispatch(event)
}

// IsDragging reports whether a drag currently owns the side pane.
func (g *GestureCoordinator) IsDragging() bool {
	return g.pan.IsActive()
}

func (g *GestureCoordinator) onDragStart(d gestures.DragStartDetails) {
	c := g.c
	if c.appearance.HasShadow && c.machine.State() == Front {
		// Show the shadow as soon as the drag is recognized, before any movement.
		c.animator.SetShadow(c.appearance.Shadow.Opacity)
	}
	c.machine.RequestTransition(Transitioning)
	g.tracker.Seed(c.animator.Offset())
	g.tracker.Begin(g.local(d.Position))
}

func (g *GestureCoordinator) onDragUpdate(d gestures.DragUpdateDetails) {
	offset := g.tracker.Update(g.local(d.Position), g.local(d.Velocity))
	g.c.animator.Jump(offset)
}

func (g *GestureCoordinator) onDragEnd(gestures.DragEndDetails) {
	g.settle()
}

func (g *GestureCoordinator) onDragCancel() {
	g.settle()
}

func (g *GestureCoordinator) settle() {
	result := g.tracker.End()
	target := ResolveDragEnd(result, g.c.cfg.SideWidth, g.c.cfg.SpeedThreshold)
	g.c.machine.RequestTransition(target)
}

func (g *GestureCoordinator) onTap(position graphics.Offset) {
	c := g.c
	if c.machine.State() != Side {
		return
	}
	if c.SideBounds().Contains(position) {
		return
	}
	c.machine.RequestTransition(Front)
}

// local converts container coordinates to drawer space, where positive x
// points toward the revealed anchor.
func (g *GestureCoordinator) local(p graphics.Offset) graphics.Offset {
	if g.c.geometry.Direction.IsMirrored() {
		return graphics.Offset{X: -p.X, Y: p.Y}
	}
	return p
}
