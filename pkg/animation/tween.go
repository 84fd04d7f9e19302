package animation

import (
	"math"

	"github.com/go-drift/sidedrawer/pkg/graphics"
)

// LerpFloat64 linearly interpolates between a and b.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor linearly interpolates each ARGB channel between a and b.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	t = clampUnit(t)
	channel := func(shift uint) uint32 {
		ca := float64((uint32(a) >> shift) & 0xFF)
		cb := float64((uint32(b) >> shift) & 0xFF)
		return uint32(math.Round(LerpFloat64(ca, cb, t))) << shift
	}
	return graphics.Color(channel(24) | channel(16) | channel(8) | channel(0))
}
