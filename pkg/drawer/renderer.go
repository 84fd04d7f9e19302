package drawer

// Pane is a host-owned view handle. The drawer never inspects it; it only
// passes it through to the Renderer.
type Pane any

// Renderer is the host collaborator that turns drawer state into pixels.
// Every method is called on the drawer's event loop.
type Renderer interface {
	// Mount installs both panes using the given appearance. Called on Attach.
	Mount(front, side Pane, appearance Appearance)
	// ApplyAppearance restyles the side pane after a border or background change.
	ApplyAppearance(appearance Appearance)
	// SetSidePosition moves the side pane's right edge to x in container space.
	SetSidePosition(x float64)
	// SetShadowOpacity sets the opacity of the side pane's shadow.
	SetShadowOpacity(opacity float64)
	// SetFrontInteractive enables or disables input on the front pane.
	SetFrontInteractive(enabled bool)
}

// NopRenderer discards everything. It is the default when Config.Renderer is nil.
type NopRenderer struct{}

func (NopRenderer) Mount(Pane, Pane, Appearance) {}
func (NopRenderer) ApplyAppearance(Appearance)   {}
func (NopRenderer) SetSidePosition(float64)      {}
func (NopRenderer) SetShadowOpacity(float64)     {}
func (NopRenderer) SetFrontInteractive(bool)     {}
