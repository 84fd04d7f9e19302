package testing

import (
	"time"

	"github.com/go-drift/sidedrawer/pkg/gestures"
	"github.com/go-drift/sidedrawer/pkg/graphics"
)

const (
	// dragSteps is how many moves a synthesized drag is split into. A power
	// of two keeps every intermediate position exact for integral deltas.
	dragSteps = 8
	// holdDuration outlasts the velocity window, so a release after a hold
	// reads as stationary.
	holdDuration = 200 * time.Millisecond
)

func (t *DrawerTester) allocPointer() int64 {
	t.nextPointer++
	return t.nextPointer
}

// TapAt simulates a tap at the given container position.
func (t *DrawerTester) TapAt(pos graphics.Offset) {
	id := t.allocPointer()
	t.SendPointerDown(id, pos)
	t.SendPointerUp(id, pos)
}

// DragFrom drags from start by delta, holds still, and releases, so the
// release velocity is zero and the outcome depends on position alone.
func (t *DrawerTester) DragFrom(start, delta graphics.Offset) {
	id := t.DragAndHold(start, delta)
	t.SendPointerUp(id, start.Add(delta))
}

// DragAndHold drags from start by delta and holds still without releasing.
// It returns the pointer ID so the caller can finish with SendPointerUp or
// SendPointerCancel.
func (t *DrawerTester) DragAndHold(start, delta graphics.Offset) int64 {
	id := t.allocPointer()
	t.SendPointerDown(id, start)
	t.moveSteps(id, start, delta, FrameDuration)
	t.clock.Advance(holdDuration)
	t.SendPointerMove(id, start.Add(delta))
	return id
}

// Fling drags from start by delta at a constant speed and releases without
// pausing. velocity is the speed along delta in pixels per second; zero
// behaves like DragFrom.
func (t *DrawerTester) Fling(start, delta graphics.Offset, velocity float64) {
	if velocity <= 0 || delta.Distance() == 0 {
		t.DragFrom(start, delta)
		return
	}
	total := time.Duration(delta.Distance() / velocity * float64(time.Second))
	id := t.allocPointer()
	t.SendPointerDown(id, start)
	t.moveSteps(id, start, delta, total/dragSteps)
	t.SendPointerUp(id, start.Add(delta))
}

func (t *DrawerTester) moveSteps(id int64, start, delta graphics.Offset, step time.Duration) {
	for i := 1; i <= dragSteps; i++ {
		t.clock.Advance(step)
		p := graphics.Offset{X: delta.X * float64(i) / dragSteps, Y: delta.Y * float64(i) / dragSteps}
		t.SendPointerMove(id, start.Add(p))
	}
}

// SendPointerDown sends a pointer-down event stamped with the fake clock.
func (t *DrawerTester) SendPointerDown(id int64, pos graphics.Offset) {
	t.send(id, pos, gestures.PointerPhaseDown)
}

// SendPointerMove sends a pointer-move event stamped with the fake clock.
func (t *DrawerTester) SendPointerMove(id int64, pos graphics.Offset) {
	t.send(id, pos, gestures.PointerPhaseMove)
}

// SendPointerUp sends a pointer-up event stamped with the fake clock.
func (t *DrawerTester) SendPointerUp(id int64, pos graphics.Offset) {
	t.send(id, pos, gestures.PointerPhaseUp)
}

// SendPointerCancel sends a pointer-cancel event stamped with the fake clock.
func (t *DrawerTester) SendPointerCancel(id int64, pos graphics.Offset) {
	t.send(id, pos, gestures.PointerPhaseCancel)
}

func (t *DrawerTester) send(id int64, pos graphics.Offset, phase gestures.PointerPhase) {
	t.Controller.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     phase,
		Time:      t.clock.Now(),
	})
}
