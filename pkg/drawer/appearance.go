package drawer

import (
	"fmt"

	"github.com/go-drift/sidedrawer/pkg/graphics"
)

// BlurStyle selects the material of a blurred side pane background.
type BlurStyle int

const (
	BlurLight BlurStyle = iota
	BlurExtraLight
	BlurDark
)

// String returns a human-readable representation of the blur style.
func (s BlurStyle) String() string {
	switch s {
	case BlurLight:
		return "light"
	case BlurExtraLight:
		return "extra_light"
	case BlurDark:
		return "dark"
	default:
		return fmt.Sprintf("BlurStyle(%d)", int(s))
	}
}

// ParseBlurStyle parses the String form of a BlurStyle.
func ParseBlurStyle(s string) (BlurStyle, error) {
	switch s {
	case "", "light":
		return BlurLight, nil
	case "extra_light":
		return BlurExtraLight, nil
	case "dark":
		return BlurDark, nil
	default:
		return 0, fmt.Errorf("unknown blur style %q", s)
	}
}

// Background is the side pane's background. It is a closed set: Opaque,
// Translucent and Vibrant are the only implementations.
type Background interface {
	isBackground()
}

// Opaque paints a solid color and may cast a shadow onto the front pane.
type Opaque struct {
	Color graphics.Color
	// Shadow is nil for no shadow.
	Shadow *graphics.Shadow
}

// Translucent blurs the front pane behind the side pane, tinted by Color.
type Translucent struct {
	Blur  BlurStyle
	Color graphics.Color
}

// Vibrant is Translucent with a vibrancy layer over the side pane content.
type Vibrant struct {
	Blur  BlurStyle
	Color graphics.Color
}

func (Opaque) isBackground()      {}
func (Translucent) isBackground() {}
func (Vibrant) isBackground()     {}

// Compositing is the strategy a renderer uses to draw the side pane.
type Compositing int

const (
	// CompositeSolid draws the side pane content over a solid fill.
	CompositeSolid Compositing = iota
	// CompositeBlur draws the content over a blur of what lies beneath.
	CompositeBlur
	// CompositeBlurVibrancy nests the content in a vibrancy layer over a blur.
	CompositeBlurVibrancy
)

// String returns a human-readable representation of the strategy.
func (c Compositing) String() string {
	switch c {
	case CompositeSolid:
		return "solid"
	case CompositeBlur:
		return "blur"
	case CompositeBlurVibrancy:
		return "blur+vibrancy"
	default:
		return fmt.Sprintf("Compositing(%d)", int(c))
	}
}

// Border is a vertical line drawn along the side pane's inner edge.
type Border struct {
	Thickness float64
	Color     graphics.Color
}

// DefaultBorder is drawn when no border is configured.
func DefaultBorder() Border {
	return Border{Thickness: 1.0, Color: graphics.ColorLightGray}
}

// Appearance is the fully resolved styling handed to a Renderer.
type Appearance struct {
	Compositing Compositing
	// Fill is the side pane's background or tint color.
	Fill graphics.Color
	Blur BlurStyle
	// Shadow is meaningful only when HasShadow is true.
	Shadow       graphics.Shadow
	HasShadow    bool
	ShadowOffset graphics.Offset
	Border       Border
}

// resolveAppearance expands a background and border into renderer-ready
// styling. Every Background variant is handled explicitly.
func resolveAppearance(bg Background, border *Border, direction LayoutDirection) (Appearance, error) {
	a := Appearance{Border: DefaultBorder()}
	if border != nil {
		a.Border = *border
	}
	switch bg := bg.(type) {
	case Opaque:
		a.Compositing = CompositeSolid
		a.Fill = bg.Color
		if bg.Shadow != nil {
			a.HasShadow = true
			a.Shadow = bg.Shadow.Normalized()
			a.ShadowOffset = a.Shadow.Offset(direction.IsMirrored())
		}
	case *Opaque:
		if bg == nil {
			return Appearance{}, fmt.Errorf("background is required")
		}
		return resolveAppearance(*bg, border, direction)
	case Translucent:
		a.Compositing = CompositeBlur
		a.Fill = bg.Color
		a.Blur = bg.Blur
	case Vibrant:
		a.Compositing = CompositeBlurVibrancy
		a.Fill = bg.Color
		a.Blur = bg.Blur
	case nil:
		return Appearance{}, fmt.Errorf("background is required")
	default:
		return Appearance{}, fmt.Errorf("unsupported background %T", bg)
	}
	return a, nil
}
