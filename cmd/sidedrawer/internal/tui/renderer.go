package tui

import "github.com/go-drift/sidedrawer/pkg/drawer"

// termRenderer records what the controller asks for; View paints from it.
type termRenderer struct {
	appearance       drawer.Appearance
	position         float64
	shadow           float64
	frontInteractive bool
}

func (r *termRenderer) Mount(_, _ drawer.Pane, appearance drawer.Appearance) {
	r.appearance = appearance
}

func (r *termRenderer) ApplyAppearance(appearance drawer.Appearance) {
	r.appearance = appearance
}

func (r *termRenderer) SetSidePosition(x float64)        { r.position = x }
func (r *termRenderer) SetShadowOpacity(opacity float64) { r.shadow = opacity }
func (r *termRenderer) SetFrontInteractive(enabled bool) { r.frontInteractive = enabled }
