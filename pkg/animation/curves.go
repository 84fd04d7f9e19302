package animation

import "math"

// Curve maps linear progress t in [0, 1] to eased progress. Every curve must
// return 0 at t=0 and 1 at t=1.
type Curve func(t float64) float64

// Linear returns progress unchanged.
func Linear(t float64) float64 {
	return t
}

// EaseIn starts slowly and accelerates. Use for elements leaving the screen.
// Equivalent to CSS ease-in.
var EaseIn = CubicBezier(0.42, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates. Use for elements arriving on screen.
// Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.58, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
var EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

// CubicBezier returns an easing curve matching CSS cubic-bezier(x1, y1, x2, y2).
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezierComponent(y1, y2, solveBezierX(x1, x2, t))
	}
}

// solveBezierX finds the curve parameter whose x component equals x.
func solveBezierX(x1, x2, x float64) float64 {
	const tolerance = 1e-7

	u := x
	// Newton-Raphson converges in a handful of steps for well-formed curves.
	for range 8 {
		dx := bezierComponent(x1, x2, u) - x
		if math.Abs(dx) < tolerance {
			return clampUnit(u)
		}
		slope := bezierSlope(x1, x2, u)
		if math.Abs(slope) < tolerance {
			break
		}
		u -= dx / slope
	}

	// Bisection keeps the answer inside [0, 1] when Newton stalls.
	lo, hi := 0.0, 1.0
	u = clampUnit(u)
	for range 20 {
		dx := bezierComponent(x1, x2, u) - x
		if math.Abs(dx) < tolerance {
			break
		}
		if dx > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}

// bezierComponent evaluates one axis of a cubic bezier with endpoints 0 and 1.
func bezierComponent(p1, p2, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*p1 + 3*inv*t*t*p2 + t*t*t
}

func bezierSlope(p1, p2, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*p1 + 6*inv*t*(p2-p1) + 3*t*t*(1-p2)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
