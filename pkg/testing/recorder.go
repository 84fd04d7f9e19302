package testing

import (
	"fmt"

	"github.com/go-drift/sidedrawer/pkg/drawer"
)

// RecordingRenderer is a drawer.Renderer that remembers what it was told.
type RecordingRenderer struct {
	Mounted          bool
	Appearance       drawer.Appearance
	Position         float64
	ShadowOpacity    float64
	FrontInteractive bool

	// Positions holds every position in the order it was set.
	Positions []float64
	// AppearanceUpdates counts ApplyAppearance calls.
	AppearanceUpdates int
}

func (r *RecordingRenderer) Mount(_, _ drawer.Pane, appearance drawer.Appearance) {
	r.Mounted = true
	r.Appearance = appearance
}

func (r *RecordingRenderer) ApplyAppearance(appearance drawer.Appearance) {
	r.Appearance = appearance
	r.AppearanceUpdates++
}

func (r *RecordingRenderer) SetSidePosition(x float64) {
	r.Position = x
	r.Positions = append(r.Positions, x)
}

func (r *RecordingRenderer) SetShadowOpacity(opacity float64) {
	r.ShadowOpacity = opacity
}

func (r *RecordingRenderer) SetFrontInteractive(enabled bool) {
	r.FrontInteractive = enabled
}

// Notification is one delegate callback.
type Notification struct {
	// Did is false for WillChangeTo and true for DidChangeTo.
	Did   bool
	State drawer.Presenting
}

func (n Notification) String() string {
	if n.Did {
		return "did:" + n.State.String()
	}
	return "will:" + n.State.String()
}

// RecordingDelegate is a drawer.Delegate that records every notification.
type RecordingDelegate struct {
	Notifications []Notification
}

func (d *RecordingDelegate) WillChangeTo(state drawer.Presenting) {
	d.Notifications = append(d.Notifications, Notification{State: state})
}

func (d *RecordingDelegate) DidChangeTo(state drawer.Presenting) {
	d.Notifications = append(d.Notifications, Notification{Did: true, State: state})
}

// Count returns how many notifications match did and state.
func (d *RecordingDelegate) Count(did bool, state drawer.Presenting) int {
	n := 0
	for _, note := range d.Notifications {
		if note.Did == did && note.State == state {
			n++
		}
	}
	return n
}

// Trace renders the notifications as "will:side did:side ...".
func (d *RecordingDelegate) Trace() string {
	out := ""
	for i, note := range d.Notifications {
		if i > 0 {
			out += " "
		}
		out += note.String()
	}
	return out
}

// Reset clears recorded notifications.
func (d *RecordingDelegate) Reset() {
	d.Notifications = nil
}

var _ fmt.Stringer = Notification{}
