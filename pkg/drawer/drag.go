package drawer

import "github.com/go-drift/sidedrawer/pkg/graphics"

// DragResult is what a drag session leaves behind when it ends.
type DragResult struct {
	FinalOffset   float64
	FinalVelocity graphics.Offset
}

// DragTracker accumulates pointer deltas of a live drag into a reveal
// distance clamped to [0, SideWidth].
//
// Coordinates are in drawer space: positive x always points toward the
// revealed anchor. Callers mirror right-to-left input before feeding it in.
type DragTracker struct {
	sideWidth    float64
	previous     graphics.Offset
	lastVelocity graphics.Offset
	offset       float64
}

// NewDragTracker creates a tracker for a side pane of the given width.
func NewDragTracker(sideWidth float64) *DragTracker {
	return &DragTracker{sideWidth: sideWidth}
}

// SetSideWidth changes the clamp range, re-clamping the current offset.
func (t *DragTracker) SetSideWidth(width float64) {
	t.sideWidth = width
	t.offset = graphics.Clamp(0, t.offset, width)
}

// Seed sets the offset a session starts from, typically the live position
// handed over by an interrupted animation.
func (t *DragTracker) Seed(offset float64) {
	t.offset = graphics.Clamp(0, offset, t.sideWidth)
}

// Offset returns the current clamped offset.
func (t *DragTracker) Offset() float64 {
	return t.offset
}

// Begin records the pointer a session starts from.
func (t *DragTracker) Begin(pointer graphics.Offset) {
	t.previous = pointer
}

// Update applies the horizontal movement since the last call and returns the
// new clamped offset.
func (t *DragTracker) Update(pointer, velocity graphics.Offset) float64 {
	delta := pointer.X - t.previous.X
	t.offset = graphics.Clamp(0, t.offset+delta, t.sideWidth)
	t.lastVelocity = velocity
	t.previous = pointer
	return t.offset
}

// End returns the session's final offset and velocity and resets the
// pointer bookkeeping for the next session.
func (t *DragTracker) End() DragResult {
	result := DragResult{FinalOffset: t.offset, FinalVelocity: t.lastVelocity}
	t.previous = graphics.Offset{}
	t.lastVelocity = graphics.Offset{}
	return result
}
