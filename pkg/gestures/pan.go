package gestures

import "github.com/go-drift/sidedrawer/pkg/graphics"

// PanRecognizer recognizes single-pointer drags.
//
// The drag starts once the pointer travels farther than Slop from where it
// went down. A second pointer pressed while one is tracked rejects the gesture
// before it starts and cancels it after.
type PanRecognizer struct {
	Router   *Router
	Slop     float64
	OnStart  func(DragStartDetails)
	OnUpdate func(DragUpdateDetails)
	OnEnd    func(DragEndDetails)
	OnCancel func()

	// Disabled drops every pointer until cleared.
	Disabled bool

	tracking bool
	pointer  int64
	start    graphics.Offset
	last     graphics.Offset
	velocity graphics.Offset
	tracker  VelocityTracker
	started  bool
	rejected bool
}

// NewPanRecognizer creates a pan recognizer bound to router.
func NewPanRecognizer(router *Router) *PanRecognizer {
	return &PanRecognizer{Router: router, Slop: DefaultTouchSlop}
}

// IsActive reports whether a drag has started and not yet ended.
func (p *PanRecognizer) IsActive() bool {
	return p.tracking && p.started
}

func (p *PanRecognizer) AddPointer(event PointerEvent) {
	if p.Disabled {
		return
	}
	if p.tracking {
		// Multi-touch is not a pan.
		if event.PointerID != p.pointer {
			p.abandon()
		}
		return
	}
	p.tracking = true
	p.pointer = event.PointerID
	p.start = event.Position
	p.last = event.Position
	p.velocity = graphics.Offset{}
	p.tracker.Reset()
	p.tracker.AddPosition(event.timestamp(), event.Position)
	p.started = false
	p.rejected = false
}

func (p *PanRecognizer) HandleEvent(event PointerEvent) {
	if !p.tracking || event.PointerID != p.pointer {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		p.handleMove(event)
	case PointerPhaseUp:
		p.handleUp(event)
	case PointerPhaseCancel:
		p.abandon()
	}
}

func (p *PanRecognizer) RejectGesture(pointerID int64) {
	if !p.tracking || pointerID != p.pointer {
		return
	}
	p.rejected = true
}

func (p *PanRecognizer) handleMove(event PointerEvent) {
	if p.rejected {
		return
	}
	now := event.timestamp()
	p.tracker.AddPosition(now, event.Position)

	if !p.started {
		if event.Position.Sub(p.start).Distance() <= p.slop() {
			p.last = event.Position
			return
		}
		if p.Router != nil && !p.Router.Claim(p.pointer, p) {
			p.rejected = true
			return
		}
		p.started = true
		if p.OnStart != nil {
			p.OnStart(DragStartDetails{Position: p.start})
		}
		// Report the slop distance too so tracking stays 1:1 with the pointer.
		p.last = p.start
	}

	delta := event.Position.Sub(p.last)
	p.velocity = p.tracker.Velocity()
	p.last = event.Position
	if p.OnUpdate != nil {
		p.OnUpdate(DragUpdateDetails{
			Position: event.Position,
			Delta:    delta,
			Velocity: p.velocity,
		})
	}
}

func (p *PanRecognizer) handleUp(event PointerEvent) {
	started := p.started && !p.rejected
	velocity := p.velocity
	p.reset()
	if started && p.OnEnd != nil {
		p.OnEnd(DragEndDetails{Position: event.Position, Velocity: velocity})
	}
}

// abandon stops tracking, cancelling a drag that already started.
func (p *PanRecognizer) abandon() {
	started := p.started && !p.rejected
	p.reset()
	if started && p.OnCancel != nil {
		p.OnCancel()
	}
}

func (p *PanRecognizer) reset() {
	p.tracking = false
	p.started = false
	p.rejected = false
	p.tracker.Reset()
}

func (p *PanRecognizer) slop() float64 {
	if p.Slop <= 0 {
		return DefaultTouchSlop
	}
	return p.Slop
}
