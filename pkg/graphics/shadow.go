package graphics

// Default shadow parameters for a side pane drawn over the front pane.
const (
	DefaultShadowOpacity = 0.3
	DefaultShadowRadius  = 5.0
	DefaultShadowWidth   = 7.0
)

// Shadow describes a horizontal drop shadow cast by the side pane onto the
// front pane.
//
// Opacity is the value the shadow animates to while the side pane is
// revealed; the resting opacity while hidden is always zero.
type Shadow struct {
	Color   Color
	Opacity float64
	Radius  float64
	// Width is the horizontal offset of the shadow, measured away from the
	// drawer edge.
	Width float64
}

// DefaultShadow returns the shadow used when a background requests one
// without specifying its parameters.
func DefaultShadow() Shadow {
	return Shadow{
		Color:   ColorBlack,
		Opacity: DefaultShadowOpacity,
		Radius:  DefaultShadowRadius,
		Width:   DefaultShadowWidth,
	}
}

// Normalized fills zero fields with defaults and clamps Opacity to [0, 1].
func (s Shadow) Normalized() Shadow {
	defaults := DefaultShadow()
	if s.Color == ColorTransparent {
		s.Color = defaults.Color
	}
	if s.Opacity <= 0 {
		s.Opacity = defaults.Opacity
	}
	if s.Radius <= 0 {
		s.Radius = defaults.Radius
	}
	if s.Width == 0 {
		s.Width = defaults.Width
	}
	s.Opacity = clamp01(s.Opacity)
	return s
}

// Offset returns the shadow offset. The horizontal component is negated when
// mirrored is true so the shadow always falls onto the front pane.
func (s Shadow) Offset(mirrored bool) Offset {
	if mirrored {
		return Offset{X: -s.Width}
	}
	return Offset{X: s.Width}
}
