// Package gestures turns raw pointer streams into drag and tap callbacks.
//
// A [Router] fans each [PointerEvent] out to its recognizers. Recognizers
// compete for a pointer: the first to claim it through [Router.Claim] wins and
// every other recognizer is told to reject it. [PanRecognizer] claims once the
// pointer travels past its slop, [TapRecognizer] fires on release if nothing
// else claimed the pointer first.
package gestures

import (
	"fmt"
	"time"

	"github.com/go-drift/sidedrawer/pkg/animation"
	"github.com/go-drift/sidedrawer/pkg/graphics"
)

// DefaultTouchSlop is the distance a pointer may travel before a tap becomes a drag.
const DefaultTouchSlop = 8.0

// PointerPhase is the lifecycle stage of a pointer event.
type PointerPhase int

const (
	// PointerPhaseDown marks first contact.
	PointerPhaseDown PointerPhase = iota
	// PointerPhaseMove marks movement while in contact.
	PointerPhaseMove
	// PointerPhaseUp marks release.
	PointerPhaseUp
	// PointerPhaseCancel marks the system taking the pointer away.
	PointerPhaseCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single sample of a pointer.
type PointerEvent struct {
	PointerID int64
	Position  graphics.Offset
	Phase     PointerPhase
	// Time is when the sample was taken. Zero means animation.Now().
	Time time.Time
}

func (e PointerEvent) timestamp() time.Time {
	if e.Time.IsZero() {
		return animation.Now()
	}
	return e.Time
}

// DragStartDetails describes the start of a drag.
type DragStartDetails struct {
	// Position is where the pointer first touched down.
	Position graphics.Offset
}

// DragUpdateDetails describes pointer movement during a drag.
type DragUpdateDetails struct {
	Position graphics.Offset
	Delta    graphics.Offset
	// Velocity is the pointer velocity in pixels per second.
	Velocity graphics.Offset
}

// DragEndDetails describes the end of a drag.
type DragEndDetails struct {
	Position graphics.Offset
	// Velocity is the last velocity reported while the pointer moved.
	Velocity graphics.Offset
}
