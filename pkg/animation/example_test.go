package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/sidedrawer/pkg/animation"
)

// This example shows how to drive a controller toward a target.
func ExampleController() {
	controller := animation.NewController(250 * time.Millisecond)

	controller.AddListener(func(v float64) {
		_ = v // apply to the visual position
	})

	controller.AnimateTo(280, animation.EaseOut, func(o animation.Outcome) {
		fmt.Println("first run:", o)
	})

	// Retargeting mid-flight interrupts the first run.
	controller.AnimateTo(0, animation.EaseIn, nil)
	controller.Dispose()

	// Output:
	// first run: interrupted
}

// This example shows a custom easing curve.
func ExampleCubicBezier() {
	snappy := animation.CubicBezier(0.2, 0.9, 0.1, 1.0)
	fmt.Printf("%.1f %.1f\n", snappy(0), snappy(1))

	// Output:
	// 0.0 1.0
}
