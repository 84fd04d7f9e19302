package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/sidedrawer/cmd/sidedrawer/internal/config"
	"github.com/go-drift/sidedrawer/pkg/animation"
	"github.com/go-drift/sidedrawer/pkg/drawer"
	drawertest "github.com/go-drift/sidedrawer/pkg/testing"
)

func newTestModel(t *testing.T, opts Options) (*Model, *drawertest.FakeClock) {
	t.Helper()
	clock := drawertest.NewFakeClock()
	prev := animation.SetClock(clock)
	m, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		m.Controller().Dispose()
		animation.SetClock(prev)
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	return m, clock
}

func settle(m *Model, clock *drawertest.FakeClock) {
	for i := 0; i < 40 && m.Controller().IsAnimating(); i++ {
		clock.Advance(frameInterval)
		m.Update(frameMsg{})
	}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouse(action tea.MouseAction, x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: 3, Action: action, Button: tea.MouseButtonLeft}
}

func TestModel_AttachesOnWindowSize(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	c := m.Controller()
	if !c.IsAttached() {
		t.Fatal("controller not attached")
	}
	if got := c.Geometry().ContainerWidth; got != 800 {
		t.Errorf("container width = %v, want 800", got)
	}
	if !strings.Contains(m.View(), "front") {
		t.Errorf("view does not show the state:\n%s", m.View())
	}
}

func TestModel_ViewBeforeAttach(t *testing.T) {
	m, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer m.Controller().Dispose()
	if got := m.View(); got != "starting…" {
		t.Errorf("View = %q", got)
	}
	m.Update(runeKey("s"))
	if m.Controller().IsAttached() {
		t.Error("keys must not attach the controller")
	}
}

func TestModel_Keys(t *testing.T) {
	m, clock := newTestModel(t, Options{})
	c := m.Controller()

	m.Update(runeKey("s"))
	settle(m, clock)
	if c.State() != drawer.Side {
		t.Fatalf("after s: %s", c.State())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	settle(m, clock)
	if c.State() != drawer.Front {
		t.Fatalf("after esc: %s", c.State())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	settle(m, clock)
	if c.State() != drawer.Side {
		t.Fatalf("after enter: %s", c.State())
	}

	m.Update(runeKey("p"))
	if c.PanEnabled() {
		t.Error("p should disable dragging")
	}

	m.Update(runeKey("d"))
	if got := c.Geometry().Direction; got != drawer.RightToLeft {
		t.Errorf("direction = %s, want rtl", got)
	}

	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModel_MouseDragOpens(t *testing.T) {
	m, clock := newTestModel(t, Options{})
	c := m.Controller()

	m.Update(mouse(tea.MouseActionPress, 0))
	m.Update(mouse(tea.MouseActionMotion, 10))
	m.Update(mouse(tea.MouseActionMotion, 20))
	if !c.IsDragging() {
		t.Fatal("motion should start a drag")
	}
	if got := c.Offset(); got != 200 {
		t.Errorf("offset = %v, want 200", got)
	}
	m.Update(mouse(tea.MouseActionRelease, 20))
	settle(m, clock)

	if c.State() != drawer.Side {
		t.Errorf("state = %s, want side", c.State())
	}
	if m.frontClicks != 0 {
		t.Errorf("a drag must not count as a click, got %d", m.frontClicks)
	}
}

func TestModel_ClicksAndTapToDismiss(t *testing.T) {
	m, clock := newTestModel(t, Options{})
	c := m.Controller()

	m.Update(mouse(tea.MouseActionPress, 60))
	m.Update(mouse(tea.MouseActionRelease, 60))
	if m.frontClicks != 1 {
		t.Fatalf("frontClicks = %d, want 1", m.frontClicks)
	}

	m.Update(runeKey("s"))
	settle(m, clock)

	// The front pane is covered now; a click there dismisses instead of counting.
	m.Update(mouse(tea.MouseActionPress, 60))
	m.Update(mouse(tea.MouseActionRelease, 60))
	settle(m, clock)
	if m.frontClicks != 1 {
		t.Errorf("frontClicks = %d, want 1", m.frontClicks)
	}
	if c.State() != drawer.Front {
		t.Errorf("state = %s, want front", c.State())
	}
}

func TestModel_ApplyConfig(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	c := m.Controller()

	resolved, err := (&config.Config{
		Direction:  "rtl",
		Background: config.BackgroundConfig{Kind: "vibrant", Color: "#00000080", Blur: "dark"},
	}).Resolve()
	if err != nil {
		t.Fatal(err)
	}
	m.Update(ConfigMsg{Config: resolved})

	if got := c.Appearance().Compositing; got != drawer.CompositeBlurVibrancy {
		t.Errorf("compositing = %s", got)
	}
	if got := c.Geometry().Direction; got != drawer.RightToLeft {
		t.Errorf("direction = %s", got)
	}
	if m.notice != "config reloaded" {
		t.Errorf("notice = %q", m.notice)
	}

	m.Update(ConfigMsg{Err: os.ErrPermission})
	if !strings.HasPrefix(m.notice, "config: ") {
		t.Errorf("notice = %q", m.notice)
	}
	if got := c.Appearance().Compositing; got != drawer.CompositeBlurVibrancy {
		t.Error("a failed reload must keep the previous appearance")
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs := make(chan tea.Msg, 64)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, func(msg tea.Msg) { msgs <- msg })
	}()

	path := filepath.Join(dir, config.FileName)
	deadline := time.After(5 * time.Second)
	write := time.NewTicker(50 * time.Millisecond)
	defer write.Stop()
	for {
		select {
		case msg := <-msgs:
			cm, ok := msg.(ConfigMsg)
			if !ok {
				t.Fatalf("unexpected message %T", msg)
			}
			if cm.Err != nil {
				t.Fatalf("reload failed: %v", cm.Err)
			}
			if cm.Config.SideWidth != 150 {
				// A truncating write can be observed before the content lands.
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch returned %v", err)
			}
			return
		case <-write.C:
			if err := os.WriteFile(path, []byte("side_width: 150\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}
