package drawer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-drift/sidedrawer/pkg/graphics"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		cfg  GeometryConfig
		want Anchors
	}{
		{"ltr", GeometryConfig{ContainerWidth: 800, SideWidth: 280}, Anchors{Hidden: 0, Revealed: 280}},
		{"rtl", GeometryConfig{ContainerWidth: 800, SideWidth: 280, Direction: RightToLeft}, Anchors{Hidden: 1080, Revealed: 800}},
		{"side wider than container", GeometryConfig{ContainerWidth: 200, SideWidth: 300}, Anchors{Hidden: 0, Revealed: 300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.cfg); got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGeometryConfig_Validate(t *testing.T) {
	valid := GeometryConfig{ContainerWidth: 800, SideWidth: 280}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	for _, cfg := range []GeometryConfig{
		{ContainerWidth: 0, SideWidth: 280},
		{ContainerWidth: 800, SideWidth: 0},
		{ContainerWidth: -1, SideWidth: 280},
		{ContainerWidth: math.Inf(1), SideWidth: 280},
		{ContainerWidth: 800, SideWidth: math.NaN()},
	} {
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate(%+v) = nil, want error", cfg)
		}
	}
}

func TestGeometryConfig_PositionRoundTrip(t *testing.T) {
	for _, dir := range []LayoutDirection{LeftToRight, RightToLeft} {
		cfg := GeometryConfig{ContainerWidth: 800, SideWidth: 280, Direction: dir}
		a := Resolve(cfg)
		if got := cfg.PositionFor(0); got != a.Hidden {
			t.Errorf("%v: PositionFor(0) = %v, want %v", dir, got, a.Hidden)
		}
		if got := cfg.PositionFor(280); got != a.Revealed {
			t.Errorf("%v: PositionFor(280) = %v, want %v", dir, got, a.Revealed)
		}
		if got := cfg.RevealFor(cfg.PositionFor(123)); got != 123 {
			t.Errorf("%v: RevealFor(PositionFor(123)) = %v", dir, got)
		}
	}
}

func TestGeometryConfig_SideBounds(t *testing.T) {
	ltr := GeometryConfig{ContainerWidth: 800, SideWidth: 280}
	got := ltr.SideBounds(280, 600)
	want := graphics.RectFromLTWH(0, 0, 280, 600)
	if got != want {
		t.Errorf("SideBounds() = %+v, want %+v", got, want)
	}

	rtl := GeometryConfig{ContainerWidth: 800, SideWidth: 280, Direction: RightToLeft}
	got = rtl.SideBounds(800, 600)
	if got.Left != 520 || got.Right != 800 {
		t.Errorf("rtl SideBounds() = %+v, want [520, 800]", got)
	}

	unbounded := ltr.SideBounds(280, 0)
	if !unbounded.Contains(graphics.Offset{X: 10, Y: 1e9}) {
		t.Error("expected a zero height to leave the bounds vertically open")
	}
}

func TestLayoutDirection(t *testing.T) {
	if LeftToRight.IsMirrored() {
		t.Error("LeftToRight should not be mirrored")
	}
	if !RightToLeft.IsMirrored() {
		t.Error("RightToLeft should be mirrored")
	}
	if RightToLeft.String() != "rtl" {
		t.Errorf("String() = %q", RightToLeft.String())
	}
}

func TestDragTracker_ClampsEverySequence(t *testing.T) {
	const width = 250.0
	rng := rand.New(rand.NewSource(1))
	for run := 0; run < 200; run++ {
		tracker := NewDragTracker(width)
		tracker.Seed(rng.Float64() * width)
		x := rng.Float64()*800 - 400
		tracker.Begin(graphics.Offset{X: x})
		for step := 0; step < 50; step++ {
			x += rng.Float64()*300 - 150
			offset := tracker.Update(graphics.Offset{X: x}, graphics.Offset{})
			if offset < 0 || offset > width {
				t.Fatalf("run %d step %d: offset %v outside [0, %v]", run, step, offset, width)
			}
		}
	}
}

func TestDragTracker_AccumulatesAndResets(t *testing.T) {
	tracker := NewDragTracker(200)
	tracker.Seed(50)
	tracker.Begin(graphics.Offset{X: 10})
	tracker.Update(graphics.Offset{X: 40}, graphics.Offset{X: 100})
	if got := tracker.Update(graphics.Offset{X: 30}, graphics.Offset{X: -20}); got != 70 {
		t.Errorf("Update() = %v, want 70", got)
	}

	result := tracker.End()
	if result.FinalOffset != 70 || result.FinalVelocity.X != -20 {
		t.Errorf("End() = %+v", result)
	}
	if again := tracker.End(); again.FinalVelocity != (graphics.Offset{}) {
		t.Errorf("End() should reset velocity, got %+v", again.FinalVelocity)
	}

	tracker.SetSideWidth(60)
	if tracker.Offset() != 60 {
		t.Errorf("SetSideWidth should re-clamp, offset = %v", tracker.Offset())
	}
	tracker.Seed(-5)
	if tracker.Offset() != 0 {
		t.Errorf("Seed(-5) offset = %v, want 0", tracker.Offset())
	}
}

func TestResolveDragEnd(t *testing.T) {
	const (
		width     = 280.0
		threshold = 300.0
	)
	tests := []struct {
		name     string
		offset   float64
		velocity float64
		want     Presenting
	}{
		{"fast open from closed", 0, threshold + 1, Side},
		{"fast close from open", width, -(threshold + 1), Front},
		{"velocity beats position", width, threshold + 1, Side},
		{"threshold itself is not fast", 0, threshold, Front},
		{"past midpoint", width/2 + 1, 0, Side},
		{"exact midpoint", width / 2, 0, Front},
		{"short of midpoint", width/2 - 1, 0, Front},
		{"slow past midpoint", width/2 + 1, -threshold, Side},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DragResult{FinalOffset: tt.offset, FinalVelocity: graphics.Offset{X: tt.velocity}}
			if got := ResolveDragEnd(result, width, threshold); got != tt.want {
				t.Errorf("ResolveDragEnd() = %v, want %v", got, tt.want)
			}
		})
	}
}
