package drawer_test

import (
	"fmt"
	"time"

	"github.com/go-drift/sidedrawer/pkg/drawer"
	"github.com/go-drift/sidedrawer/pkg/graphics"
	drawertest "github.com/go-drift/sidedrawer/pkg/testing"
)

func ExampleSideController() {
	tester, err := drawertest.NewDrawerTester(drawer.Config{
		SideWidth:  280,
		Background: drawer.Opaque{Color: graphics.ColorWhite},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer tester.Cleanup()

	c := tester.Controller
	c.SetDelegate(drawer.DelegateFuncs{
		DidChange: func(state drawer.Presenting) { fmt.Println("now showing", state) },
	})
	c.ShowSide()
	_ = tester.PumpAndSettle(time.Second)
	fmt.Println(c.Position())

	// Output:
	// now showing side
	// 280
}

func ExampleResolveDragEnd() {
	slowPastMiddle := drawer.DragResult{FinalOffset: 150}
	fastBack := drawer.DragResult{FinalOffset: 150, FinalVelocity: graphics.Offset{X: -400}}

	fmt.Println(drawer.ResolveDragEnd(slowPastMiddle, 280, drawer.DefaultSpeedThreshold))
	fmt.Println(drawer.ResolveDragEnd(fastBack, 280, drawer.DefaultSpeedThreshold))
	// Output:
	// side
	// front
}
