package gestures

import "github.com/go-drift/sidedrawer/pkg/graphics"

// TapRecognizer recognizes a press and release that stays within Slop and is
// not claimed by another recognizer.
type TapRecognizer struct {
	Slop  float64
	OnTap func(position graphics.Offset)

	// Enabled gates recognition. A disabled recognizer ignores pointers.
	Enabled bool

	tracking bool
	pointer  int64
	down     graphics.Offset
	rejected bool
}

// NewTapRecognizer creates an enabled tap recognizer.
func NewTapRecognizer() *TapRecognizer {
	return &TapRecognizer{Slop: DefaultTouchSlop, Enabled: true}
}

func (t *TapRecognizer) AddPointer(event PointerEvent) {
	if !t.Enabled {
		return
	}
	if t.tracking {
		if event.PointerID != t.pointer {
			t.rejected = true
		}
		return
	}
	t.tracking = true
	t.pointer = event.PointerID
	t.down = event.Position
	t.rejected = false
}

func (t *TapRecognizer) HandleEvent(event PointerEvent) {
	if !t.tracking || event.PointerID != t.pointer {
		return
	}
	switch event.Phase {
	case PointerPhaseMove:
		slop := t.Slop
		if slop <= 0 {
			slop = DefaultTouchSlop
		}
		if event.Position.Sub(t.down).Distance() > slop {
			t.rejected = true
		}
	case PointerPhaseUp:
		fire := !t.rejected && t.Enabled
		t.tracking = false
		if fire && t.OnTap != nil {
			t.OnTap(event.Position)
		}
	case PointerPhaseCancel:
		t.tracking = false
	}
}

func (t *TapRecognizer) RejectGesture(pointerID int64) {
	if t.tracking && pointerID == t.pointer {
		t.rejected = true
	}
}
