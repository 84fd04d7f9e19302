package drawer

import "fmt"

// Presenting is the drawer's discrete presentation state.
type Presenting int

const (
	// Front means the side pane is hidden. This is the initial state.
	Front Presenting = iota
	// Side means the side pane is revealed.
	Side
	// Transitioning means a drag is live and owns the side pane's position.
	Transitioning
)

// String returns a human-readable representation of the state.
func (p Presenting) String() string {
	switch p {
	case Front:
		return "front"
	case Side:
		return "side"
	case Transitioning:
		return "transitioning"
	default:
		return fmt.Sprintf("Presenting(%d)", int(p))
	}
}
