// Package tui renders a side drawer in the terminal and feeds it mouse and
// keyboard input through a bubbletea program.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/sidedrawer/cmd/sidedrawer/internal/config"
	"github.com/go-drift/sidedrawer/pkg/animation"
	"github.com/go-drift/sidedrawer/pkg/drawer"
	"github.com/go-drift/sidedrawer/pkg/gestures"
	"github.com/go-drift/sidedrawer/pkg/graphics"
)

const (
	frameInterval = 16 * time.Millisecond
	// chromeRows are the status and help lines under the panes.
	chromeRows = 2
	maxEvents  = 4
)

// Options configures a Model.
type Options struct {
	Config *config.Resolved
	// RTL overrides the configured direction.
	RTL    bool
	Logger *slog.Logger
}

// ConfigMsg carries a reloaded configuration into the program.
type ConfigMsg struct {
	Config *config.Resolved
	Err    error
}

type frameMsg time.Time

// Model is the bubbletea model of the demo.
type Model struct {
	controller *drawer.SideController
	renderer   *termRenderer
	sideWidth  float64
	direction  drawer.LayoutDirection
	logger     *slog.Logger

	help   help.Model
	width  int
	height int

	pointer     int64
	pressed     bool
	pressCol    int
	moved       bool
	frontClicks int

	events []string
	notice string
}

// New creates a model. The controller is attached on the first window size.
func New(opts Options) (*Model, error) {
	resolved := opts.Config
	if resolved == nil {
		var err error
		if resolved, err = (&config.Config{}).Resolve(); err != nil {
			return nil, err
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := &Model{
		renderer:  &termRenderer{frontInteractive: true},
		sideWidth: resolved.SideWidth,
		direction: resolved.Direction,
		logger:    logger,
		help:      help.New(),
	}
	if opts.RTL {
		m.direction = drawer.RightToLeft
	}

	cfg := resolved.DrawerConfig()
	cfg.Front = "front"
	cfg.Side = "side"
	cfg.Renderer = m.renderer
	cfg.Logger = logger
	c, err := drawer.New(cfg)
	if err != nil {
		return nil, err
	}
	c.AddObserver(drawer.DelegateFuncs{
		WillChange: func(s drawer.Presenting) { m.record("will " + s.String()) },
		DidChange:  func(s drawer.Presenting) { m.record("did " + s.String()) },
	})
	m.controller = c
	return m, nil
}

// Controller exposes the drawer for tests.
func (m *Model) Controller() *drawer.SideController {
	return m.controller
}

func (m *Model) record(event string) {
	m.events = append(m.events, event)
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return frameTick()
}

// Update handles one message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.attach()
		return m, nil

	case frameMsg:
		animation.StepTickers()
		return m, frameTick()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case ConfigMsg:
		m.applyConfig(msg)
		return m, nil
	}
	return m, nil
}

func (m *Model) attach() {
	if m.width <= 0 {
		return
	}
	rows := max(1, m.height-chromeRows)
	m.controller.Attach(graphics.Size{
		Width:  float64(m.width) * cellWidth,
		Height: float64(rows) * cellHeight,
	}, m.direction)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if !m.controller.IsAttached() {
		return m, nil
	}
	c := m.controller
	switch {
	case key.Matches(msg, keys.Side):
		c.ShowSide()
	case key.Matches(msg, keys.Front):
		c.ShowFront()
	case key.Matches(msg, keys.Toggle):
		if c.IsSideVisible() {
			c.ShowFront()
		} else {
			c.ShowSide()
		}
	case key.Matches(msg, keys.Pan):
		c.SetPanEnabled(!c.PanEnabled())
		m.notice = fmt.Sprintf("drag %s", onOff(c.PanEnabled()))
	case key.Matches(msg, keys.Direction):
		if m.direction.IsMirrored() {
			m.direction = drawer.LeftToRight
		} else {
			m.direction = drawer.RightToLeft
		}
		m.attach()
		m.notice = "direction " + m.direction.String()
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.controller.IsAttached() {
		return
	}
	pos := graphics.Offset{
		X: (float64(msg.X) + 0.5) * cellWidth,
		Y: (float64(msg.Y) + 0.5) * cellHeight,
	}
	event := gestures.PointerEvent{PointerID: m.pointer, Position: pos}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pointer++
		event.PointerID = m.pointer
		event.Phase = gestures.PointerPhaseDown
		m.pressed, m.pressCol, m.moved = true, msg.X, false
	case tea.MouseActionMotion:
		if !m.pressed {
			return
		}
		if msg.X != m.pressCol {
			m.moved = true
		}
		event.Phase = gestures.PointerPhaseMove
	case tea.MouseActionRelease:
		if !m.pressed {
			return
		}
		m.pressed = false
		event.Phase = gestures.PointerPhaseUp
		// The front pane only counts clicks while it accepts input.
		if !m.moved && m.renderer.frontInteractive && !m.controller.SideBounds().Contains(pos) {
			m.frontClicks++
		}
	default:
		return
	}
	m.controller.HandlePointer(event)
}

func (m *Model) applyConfig(msg ConfigMsg) {
	if msg.Err != nil {
		m.notice = "config: " + msg.Err.Error()
		m.logger.Warn("config reload failed", "error", msg.Err)
		return
	}
	r := msg.Config
	if err := m.controller.SetBackground(r.Background); err != nil {
		m.notice = "config: " + err.Error()
		return
	}
	m.controller.SetBorder(r.Border)
	m.notice = "config reloaded"
	if r.SideWidth != m.sideWidth {
		m.notice = "config reloaded; side_width takes effect on restart"
	}
	if r.Direction != m.direction {
		m.direction = r.Direction
		m.attach()
	}
	m.logger.Info("config reloaded", "path", r.Path)
}

// View renders the panes, a status line and the help line.
func (m *Model) View() string {
	if !m.controller.IsAttached() {
		return "starting…"
	}
	c := m.controller
	r := m.renderer
	rows := max(1, m.height-chromeRows)
	layout := newPaneLayout(m.width, r.position, m.sideWidth, r.appearance, r.shadow, m.direction.IsMirrored())
	p := newPalette(r.appearance)

	front := frontLines(m.direction, m.frontClicks)
	side := sideLines()

	var b strings.Builder
	for row := 0; row < rows; row++ {
		b.WriteString(renderRow(layout, p, lineAt(front, row), lineAt(side, row), r.shadow))
		b.WriteByte('\n')
	}

	status := fmt.Sprintf("%-13s offset %3.0f/%g  shadow %.2f  %s",
		c.State(), c.Offset(), m.sideWidth, c.ShadowOpacity(), strings.Join(m.events, " › "))
	if m.notice != "" {
		status += "  · " + m.notice
	}
	b.WriteString(p.status.Render(fit(status, m.width)))
	b.WriteByte('\n')
	b.WriteString(m.help.View(keys))
	return b.String()
}

func frontLines(direction drawer.LayoutDirection, clicks int) []string {
	edge := "left"
	if direction.IsMirrored() {
		edge = "right"
	}
	return []string{
		"",
		"  Front pane",
		"",
		"  Drag from the " + edge + " edge, or press space.",
		fmt.Sprintf("  Clicks on this pane: %d", clicks),
	}
}

func sideLines() []string {
	return []string{
		"",
		"  Side pane",
		"",
		"  › Inbox",
		"    Starred",
		"    Archive",
		"",
		"  Tap outside to close",
	}
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
