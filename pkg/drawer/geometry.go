package drawer

import (
	"fmt"
	"math"

	"github.com/go-drift/sidedrawer/pkg/graphics"
)

// LayoutDirection selects the edge the side pane is anchored to.
type LayoutDirection int

const (
	// LeftToRight anchors the side pane to the left edge.
	LeftToRight LayoutDirection = iota
	// RightToLeft anchors the side pane to the right edge.
	RightToLeft
)

// String returns a human-readable representation of the direction.
func (d LayoutDirection) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	default:
		return fmt.Sprintf("LayoutDirection(%d)", int(d))
	}
}

// IsMirrored reports whether the direction is right-to-left.
func (d LayoutDirection) IsMirrored() bool {
	return d == RightToLeft
}

// GeometryConfig is the measured geometry the anchors derive from.
type GeometryConfig struct {
	ContainerWidth float64
	SideWidth      float64
	Direction      LayoutDirection
}

// Anchors are the side pane's two resting positions. A position is the
// x coordinate of the side pane's right edge in container space, so the pane
// occupies [position-SideWidth, position].
type Anchors struct {
	Hidden   float64
	Revealed float64
}

// Resolve computes the anchors for cfg.
//
// Left-to-right: Hidden is 0 and Revealed is SideWidth.
// Right-to-left: Hidden is ContainerWidth+SideWidth and Revealed is ContainerWidth.
func Resolve(cfg GeometryConfig) Anchors {
	if cfg.Direction.IsMirrored() {
		return Anchors{
			Hidden:   cfg.ContainerWidth + cfg.SideWidth,
			Revealed: cfg.ContainerWidth,
		}
	}
	return Anchors{Hidden: 0, Revealed: cfg.SideWidth}
}

// Validate checks the invariants Resolve relies on.
func (cfg GeometryConfig) Validate() error {
	if !(cfg.SideWidth > 0) || math.IsInf(cfg.SideWidth, 0) {
		return fmt.Errorf("side width must be positive and finite, got %v", cfg.SideWidth)
	}
	if !(cfg.ContainerWidth > 0) || math.IsInf(cfg.ContainerWidth, 0) {
		return fmt.Errorf("container width must be positive and finite, got %v", cfg.ContainerWidth)
	}
	return nil
}

// PositionFor maps a reveal distance in [0, SideWidth] to a position
// between the anchors: 0 is Hidden and SideWidth is Revealed.
func (cfg GeometryConfig) PositionFor(reveal float64) float64 {
	a := Resolve(cfg)
	if cfg.Direction.IsMirrored() {
		return a.Hidden - reveal
	}
	return a.Hidden + reveal
}

// RevealFor is the inverse of PositionFor.
func (cfg GeometryConfig) RevealFor(position float64) float64 {
	a := Resolve(cfg)
	if cfg.Direction.IsMirrored() {
		return a.Hidden - position
	}
	return position - a.Hidden
}

// SideBounds returns the side pane's rectangle at position. A non-positive
// height leaves the rectangle vertically unbounded.
func (cfg GeometryConfig) SideBounds(position, height float64) graphics.Rect {
	top, bottom := math.Inf(-1), math.Inf(1)
	if height > 0 {
		top, bottom = 0, height
	}
	return graphics.Rect{
		Left:   position - cfg.SideWidth,
		Top:    top,
		Right:  position,
		Bottom: bottom,
	}
}
