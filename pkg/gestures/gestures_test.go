package gestures

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/sidedrawer/pkg/graphics"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

func ev(id int64, phase PointerPhase, x float64, ms int) PointerEvent {
	return PointerEvent{PointerID: id, Phase: phase, Position: graphics.Offset{X: x, Y: 100}, Time: at(ms)}
}

type panLog struct {
	starts  []DragStartDetails
	updates []DragUpdateDetails
	ends    []DragEndDetails
	cancels int
	taps    []graphics.Offset
}

func newHarness() (*Router, *PanRecognizer, *TapRecognizer, *panLog) {
	log := &panLog{}
	router := NewRouter()
	pan := NewPanRecognizer(router)
	pan.OnStart = func(d DragStartDetails) { log.starts = append(log.starts, d) }
	pan.OnUpdate = func(d DragUpdateDetails) { log.updates = append(log.updates, d) }
	pan.OnEnd = func(d DragEndDetails) { log.ends = append(log.ends, d) }
	pan.OnCancel = func() { log.cancels++ }
	tap := NewTapRecognizer()
	tap.OnTap = func(p graphics.Offset) { log.taps = append(log.taps, p) }
	router.Add(pan)
	router.Add(tap)
	return router, pan, tap, log
}

func TestPan_StartsAfterSlopAndTracksOneToOne(t *testing.T) {
	router, _, _, log := newHarness()

	router.Dispatch(ev(1, PointerPhaseDown, 10, 0))
	router.Dispatch(ev(1, PointerPhaseMove, 14, 10))
	if len(log.starts) != 0 {
		t.Fatal("drag started inside slop")
	}
	router.Dispatch(ev(1, PointerPhaseMove, 30, 20))
	router.Dispatch(ev(1, PointerPhaseMove, 50, 30))
	router.Dispatch(ev(1, PointerPhaseUp, 50, 40))

	if len(log.starts) != 1 || log.starts[0].Position.X != 10 {
		t.Fatalf("starts = %+v, want one at x=10", log.starts)
	}
	total := 0.0
	for _, u := range log.updates {
		total += u.Delta.X
	}
	if total != 40 {
		t.Errorf("sum of deltas = %v, want 40", total)
	}
	if len(log.ends) != 1 {
		t.Fatalf("ends = %d, want 1", len(log.ends))
	}
	if log.ends[0].Velocity.X <= 0 {
		t.Errorf("end velocity = %v, want positive", log.ends[0].Velocity.X)
	}
	if len(log.taps) != 0 {
		t.Errorf("tap fired during a drag: %v", log.taps)
	}
}

func TestPan_SecondPointerCancels(t *testing.T) {
	router, pan, _, log := newHarness()

	router.Dispatch(ev(1, PointerPhaseDown, 0, 0))
	router.Dispatch(ev(1, PointerPhaseMove, 40, 10))
	if !pan.IsActive() {
		t.Fatal("expected active drag")
	}
	router.Dispatch(ev(2, PointerPhaseDown, 200, 20))
	router.Dispatch(ev(1, PointerPhaseMove, 80, 30))
	router.Dispatch(ev(1, PointerPhaseUp, 80, 40))

	if log.cancels != 1 {
		t.Errorf("cancels = %d, want 1", log.cancels)
	}
	if len(log.ends) != 0 {
		t.Errorf("ends = %d, want 0", len(log.ends))
	}
	if len(log.updates) != 1 {
		t.Errorf("updates after cancel were delivered: %d", len(log.updates))
	}
}

func TestPan_SecondPointerBeforeSlopRejects(t *testing.T) {
	router, _, _, log := newHarness()

	router.Dispatch(ev(1, PointerPhaseDown, 0, 0))
	router.Dispatch(ev(2, PointerPhaseDown, 5, 5))
	router.Dispatch(ev(1, PointerPhaseMove, 100, 10))
	router.Dispatch(ev(1, PointerPhaseUp, 100, 20))

	if len(log.starts) != 0 || log.cancels != 0 {
		t.Errorf("multi-touch produced starts=%d cancels=%d", len(log.starts), log.cancels)
	}
}

func TestPan_Disabled(t *testing.T) {
	router, pan, _, log := newHarness()
	pan.Disabled = true

	router.Dispatch(ev(1, PointerPhaseDown, 0, 0))
	router.Dispatch(ev(1, PointerPhaseMove, 100, 10))
	router.Dispatch(ev(1, PointerPhaseUp, 100, 20))

	if len(log.starts) != 0 {
		t.Error("disabled pan recognized a drag")
	}
}

func TestTap(t *testing.T) {
	router, _, tap, log := newHarness()

	router.Dispatch(ev(1, PointerPhaseDown, 300, 0))
	router.Dispatch(ev(1, PointerPhaseMove, 302, 10))
	router.Dispatch(ev(1, PointerPhaseUp, 302, 20))
	if len(log.taps) != 1 || log.taps[0].X != 302 {
		t.Fatalf("taps = %v, want one at x=302", log.taps)
	}

	tap.Enabled = false
	router.Dispatch(ev(2, PointerPhaseDown, 300, 30))
	router.Dispatch(ev(2, PointerPhaseUp, 300, 40))
	if len(log.taps) != 1 {
		t.Errorf("disabled tap fired: %v", log.taps)
	}
}

func TestVelocityTracker(t *testing.T) {
	var v VelocityTracker
	if got := v.Velocity(); got != (graphics.Offset{}) {
		t.Errorf("empty tracker velocity = %v, want zero", got)
	}

	for i := 0; i <= 5; i++ {
		v.AddPosition(at(i*10), graphics.Offset{X: float64(i * 5)})
	}
	// 5px every 10ms is 500px/s.
	if got := v.Velocity().X; math.Abs(got-500) > 1e-6 {
		t.Errorf("velocity = %v, want 500", got)
	}

	// A pause longer than the window leaves only the latest sample in range.
	v.AddPosition(at(300), graphics.Offset{X: 25})
	if got := v.Velocity().X; got != 0 {
		t.Errorf("velocity after pause = %v, want 0", got)
	}
}

func TestPointerPhaseString(t *testing.T) {
	tests := []struct {
		phase PointerPhase
		want  string
	}{
		{PointerPhaseDown, "down"},
		{PointerPhaseMove, "move"},
		{PointerPhaseUp, "up"},
		{PointerPhaseCancel, "cancel"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("PointerPhase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
