// Package drawer implements a two-pane side drawer: a front pane and a side
// pane that slides in from one horizontal edge.
//
// The drawer is always in exactly one [Presenting] state. Programmatic calls
// ([SideController.ShowSide], [SideController.ShowFront]) and gestures both go
// through a single transition path, so they converge on the same terminal
// states:
//
//	pointer events ─► GestureCoordinator ─► DragTracker (live drag)
//	                          │
//	                          ▼
//	                 StateMachine.RequestTransition
//	                          │
//	                          ▼
//	         TransitionAnimator ─► Renderer ─► Delegate.DidChangeTo
//
// Everything runs on the caller's event loop. RequestTransition returns as
// soon as the animation is scheduled; the animation advances when the loop
// calls [animation.StepTickers], and DidChangeTo is delivered from there. A
// transition superseded before its animation lands never reports
// DidChangeTo.
//
// Pixel rendering, compositing and hosting the panes are left to a
// [Renderer] supplied by the host.
package drawer
