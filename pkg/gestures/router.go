package gestures

// Recognizer consumes pointer events routed to it.
type Recognizer interface {
	// AddPointer offers a newly pressed pointer.
	AddPointer(event PointerEvent)
	// HandleEvent delivers subsequent events for pointers already offered.
	HandleEvent(event PointerEvent)
	// RejectGesture tells the recognizer another recognizer claimed the pointer.
	RejectGesture(pointerID int64)
}

// Router dispatches pointer events to a fixed set of recognizers and
// arbitrates which one owns each pointer.
type Router struct {
	recognizers []Recognizer
	owners      map[int64]Recognizer
}

// NewRouter creates a router over the given recognizers, in priority order.
func NewRouter(recognizers ...Recognizer) *Router {
	return &Router{
		recognizers: recognizers,
		owners:      make(map[int64]Recognizer),
	}
}

// Add appends a recognizer at the lowest priority.
func (r *Router) Add(rec Recognizer) {
	r.recognizers = append(r.recognizers, rec)
}

// Dispatch routes one event to every recognizer.
func (r *Router) Dispatch(event PointerEvent) {
	for _, rec := range r.recognizers {
		if event.Phase == PointerPhaseDown {
			rec.AddPointer(event)
		} else {
			rec.HandleEvent(event)
		}
	}
	if event.Phase == PointerPhaseUp || event.Phase == PointerPhaseCancel {
		delete(r.owners, event.PointerID)
	}
}

// Claim gives pointerID to winner and rejects it for every other recognizer.
// It returns false if another recognizer already owns the pointer.
func (r *Router) Claim(pointerID int64, winner Recognizer) bool {
	if owner, ok := r.owners[pointerID]; ok {
		return owner == winner
	}
	r.owners[pointerID] = winner
	for _, rec := range r.recognizers {
		if rec != winner {
			rec.RejectGesture(pointerID)
		}
	}
	return true
}
