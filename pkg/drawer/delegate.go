package drawer

import "github.com/go-drift/sidedrawer/pkg/errors"

// Delegate receives one-way notifications about state changes. It cannot
// veto a transition.
//
// For any transition, WillChangeTo precedes DidChangeTo. DidChangeTo is only
// delivered once the transition's animation lands; a transition superseded
// mid-flight never reports it, and Transitioning never reports it at all.
type Delegate interface {
	WillChangeTo(state Presenting)
	DidChangeTo(state Presenting)
}

// DelegateFuncs adapts a pair of functions to Delegate. Nil fields are skipped.
type DelegateFuncs struct {
	WillChange func(state Presenting)
	DidChange  func(state Presenting)
}

func (d DelegateFuncs) WillChangeTo(state Presenting) {
	if d.WillChange != nil {
		d.WillChange(state)
	}
}

func (d DelegateFuncs) DidChangeTo(state Presenting) {
	if d.DidChange != nil {
		d.DidChange(state)
	}
}

// observers fans notifications out to the primary delegate and any extra
// observers, in registration order.
type observers struct {
	delegate Delegate
	ids      []int
	extra    map[int]Delegate
	nextID   int
}

func (o *observers) add(d Delegate) func() {
	if o.extra == nil {
		o.extra = make(map[int]Delegate)
	}
	id := o.nextID
	o.nextID++
	o.extra[id] = d
	o.ids = append(o.ids, id)
	return func() {
		delete(o.extra, id)
		for i, v := range o.ids {
			if v == id {
				o.ids = append(o.ids[:i], o.ids[i+1:]...)
				break
			}
		}
	}
}

func (o *observers) snapshot() []Delegate {
	out := make([]Delegate, 0, len(o.ids)+1)
	if o.delegate != nil {
		out = append(out, o.delegate)
	}
	for _, id := range o.ids {
		out = append(out, o.extra[id])
	}
	return out
}

func (o *observers) willChange(state Presenting) {
	for _, d := range o.snapshot() {
		notify("drawer.WillChangeTo", func() { d.WillChangeTo(state) })
	}
}

func (o *observers) didChange(state Presenting) {
	for _, d := range o.snapshot() {
		notify("drawer.DidChangeTo", func() { d.DidChangeTo(state) })
	}
}

// notify isolates a host callback so a panicking observer cannot wedge the
// state machine.
func notify(op string, fn func()) {
	defer errors.Recover(op)
	fn()
}
