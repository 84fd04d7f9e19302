package drawer

import (
	"context"
	"log/slog"

	"github.com/go-drift/sidedrawer/pkg/animation"
)

// performFunc runs the animated portion of a transition and reports its
// outcome through done. It must not call done synchronously with Completed.
type performFunc func(to Presenting, done func(animation.Outcome))

// StateMachine owns the current Presenting state and sequences every
// transition's side effects:
//
//  1. requests for the current state are dropped (except Transitioning)
//  2. WillChangeTo(to)
//  3. perform(to) schedules the animation
//  4. the state becomes to
//  5. enter(to) applies entry side effects
//  6. DidChangeTo(to) once the animation completes, unless superseded
//
// Requests made from inside a notification or side effect are queued and
// run after the current transition's synchronous steps finish.
type StateMachine struct {
	state      Presenting
	generation uint64
	observers  *observers
	perform    performFunc
	enter      func(Presenting)
	logger     *slog.Logger

	busy   bool
	queued []Presenting
}

func newStateMachine(obs *observers, perform performFunc, enter func(Presenting), logger *slog.Logger) *StateMachine {
	return &StateMachine{
		state:     Front,
		observers: obs,
		perform:   perform,
		enter:     enter,
		logger:    logger,
	}
}

// State returns the current state.
func (m *StateMachine) State() Presenting {
	return m.state
}

// Generation increments once per accepted transition.
func (m *StateMachine) Generation() uint64 {
	return m.generation
}

// RequestTransition moves the machine to `to`. Every edge is legal.
func (m *StateMachine) RequestTransition(to Presenting) {
	if m.busy {
		m.queued = append(m.queued, to)
		return
	}
	m.busy = true
	m.transition(to)
	for len(m.queued) > 0 {
		next := m.queued[0]
		m.queued = m.queued[1:]
		m.transition(next)
	}
	m.busy = false
}

func (m *StateMachine) transition(to Presenting) {
	if to == m.state && to != Transitioning {
		return
	}
	from := m.state
	m.generation++
	gen := m.generation
	m.logger.LogAttrs(context.Background(), slog.LevelDebug, "transition",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Uint64("generation", gen),
	)

	m.observers.willChange(to)
	m.perform(to, func(outcome animation.Outcome) {
		if outcome != animation.Completed || gen != m.generation {
			m.logger.LogAttrs(context.Background(), slog.LevelDebug, "transition superseded",
				slog.String("to", to.String()),
				slog.Uint64("generation", gen),
				slog.String("outcome", outcome.String()),
			)
			return
		}
		m.observers.didChange(to)
	})
	m.state = to
	m.enter(to)
}
