// Package testing provides a deterministic harness for exercising a side
// drawer without a real renderer or event loop.
//
// # Quick Start
//
//	func TestOpens(t *testing.T) {
//	    tester := drawertest.NewDrawerTesterWithT(t, drawer.Config{
//	        SideWidth:  280,
//	        Background: drawer.Opaque{Color: graphics.ColorWhite},
//	    })
//	    tester.Controller.ShowSide()
//	    tester.PumpAndSettle(time.Second)
//
//	    if !tester.Controller.IsSideVisible() {
//	        t.Error("expected side pane to be visible")
//	    }
//	}
//
// # Animation Testing
//
// The tester installs a [FakeClock] as the animation clock. Advance it and
// pump a frame to observe mid-flight values:
//
//	tester.Advance(100 * time.Millisecond)
//
// # Gestures
//
// DragFrom, Fling, DragAndHold and TapAt synthesize pointer streams with
// timestamps from the fake clock, so velocities are exact.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drawertest "github.com/go-drift/sidedrawer/pkg/testing"
package testing
