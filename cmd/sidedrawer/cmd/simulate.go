package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/sidedrawer/cmd/sidedrawer/internal/config"
	"github.com/go-drift/sidedrawer/pkg/drawer"
	"github.com/go-drift/sidedrawer/pkg/gestures"
	"github.com/go-drift/sidedrawer/pkg/graphics"
	drawertest "github.com/go-drift/sidedrawer/pkg/testing"
)

// settleTimeout bounds every settle step of a script.
const settleTimeout = 5 * time.Second

func init() {
	RegisterCommand(&Command{
		Name:  "simulate",
		Short: "Replay a gesture script against a drawer",
		Long: `Replay a YAML gesture script against a drawer driven by a fake clock and
print every notification and the state after each step.

A script looks like:

  config:                 # optional, same keys as sidedrawer.yaml
    side_width: 200
  container: {width: 800, height: 600}
  steps:
    - show: side          # side | front
    - settle: true        # run frames until the animation lands
    - drag: {from: [190, 300], by: [-150, 0]}
    - fling: {from: [10, 300], by: [30, 0], velocity: 1000}
    - tap: [500, 300]
    - pointer: {id: 7, phase: down, at: [10, 300]}
    - advance: 100ms      # move the clock and run one frame
    - expect: side        # fail unless the drawer is in this state`,
		Usage: "sidedrawer simulate <script.yaml>",
		Run:   runSimulate,
	})
}

// Script is a gesture replay loaded from YAML.
type Script struct {
	Config    config.Config `yaml:"config"`
	Container struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"container"`
	Steps []Step `yaml:"steps"`
}

// Step is one scripted action. Exactly one field is set.
type Step struct {
	Show    string       `yaml:"show,omitempty"`
	Settle  bool         `yaml:"settle,omitempty"`
	Advance string       `yaml:"advance,omitempty"`
	Tap     Point        `yaml:"tap,omitempty"`
	Drag    *DragStep    `yaml:"drag,omitempty"`
	Fling   *DragStep    `yaml:"fling,omitempty"`
	Pointer *PointerStep `yaml:"pointer,omitempty"`
	Expect  string       `yaml:"expect,omitempty"`
}

// Point is an [x, y] pair.
type Point []float64

func (p Point) offset() (graphics.Offset, error) {
	if len(p) != 2 {
		return graphics.Offset{}, fmt.Errorf("point must be [x, y], got %v", []float64(p))
	}
	return graphics.Offset{X: p[0], Y: p[1]}, nil
}

// DragStep moves a fresh pointer from From by By.
type DragStep struct {
	From     Point   `yaml:"from"`
	By       Point   `yaml:"by"`
	Velocity float64 `yaml:"velocity,omitempty"`
}

// PointerStep sends a single raw pointer event.
type PointerStep struct {
	ID    int64  `yaml:"id"`
	Phase string `yaml:"phase"`
	At    Point  `yaml:"at"`
}

// ParseScript decodes a gesture script. Unknown keys are rejected.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("script is empty")
		}
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &s, nil
}

func runSimulate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: sidedrawer simulate <script.yaml>")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	script, err := ParseScript(data)
	if err != nil {
		return err
	}
	return simulate(stdout, script)
}

func simulate(w io.Writer, script *Script) error {
	resolved, err := script.Config.Resolve()
	if err != nil {
		return err
	}
	size := graphics.Size{Width: script.Container.Width, Height: script.Container.Height}
	if size.Width == 0 {
		size.Width = drawertest.DefaultTestWidth
	}
	if size.Height == 0 {
		size.Height = drawertest.DefaultTestHeight
	}

	cfg := resolved.DrawerConfig()
	cfg.Logger = logger
	tester, err := drawertest.NewDrawerTester(cfg,
		drawertest.WithSize(size),
		drawertest.WithDirection(resolved.Direction),
	)
	if err != nil {
		return err
	}
	defer tester.Cleanup()

	stamp := func() string {
		return fmt.Sprintf("[%6s]", tester.Clock().Elapsed().Round(time.Millisecond))
	}
	tester.Controller.AddObserver(drawer.DelegateFuncs{
		WillChange: func(s drawer.Presenting) { fmt.Fprintf(w, "%s   will %s\n", stamp(), s) },
		DidChange:  func(s drawer.Presenting) { fmt.Fprintf(w, "%s   did  %s\n", stamp(), s) },
	})

	c := tester.Controller
	a := c.Anchors()
	fmt.Fprintf(w, "%s %s container=%g side=%g hidden=%g revealed=%g\n",
		stamp(), resolved.Direction, size.Width, c.SideWidth(), a.Hidden, a.Revealed)

	for i, step := range script.Steps {
		desc, err := runStep(tester, step)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		fmt.Fprintf(w, "%s step %d: %-28s state=%s offset=%g position=%g\n",
			stamp(), i+1, desc, c.State(), c.Offset(), c.Position())
	}
	return nil
}

func runStep(t *drawertest.DrawerTester, step Step) (string, error) {
	c := t.Controller
	switch {
	case step.Show != "":
		switch strings.ToLower(step.Show) {
		case "side":
			c.ShowSide()
		case "front":
			c.ShowFront()
		default:
			return "", fmt.Errorf("show: unknown state %q", step.Show)
		}
		return "show " + step.Show, nil

	case step.Settle:
		if err := t.PumpAndSettle(settleTimeout); err != nil {
			return "", err
		}
		return "settle", nil

	case step.Advance != "":
		d, err := time.ParseDuration(step.Advance)
		if err != nil || d < 0 {
			return "", fmt.Errorf("advance: invalid duration %q", step.Advance)
		}
		t.Advance(d)
		return "advance " + d.String(), nil

	case step.Tap != nil:
		at, err := step.Tap.offset()
		if err != nil {
			return "", fmt.Errorf("tap: %w", err)
		}
		t.TapAt(at)
		return fmt.Sprintf("tap %g,%g", at.X, at.Y), nil

	case step.Drag != nil, step.Fling != nil:
		d, name := step.Drag, "drag"
		if d == nil {
			d, name = step.Fling, "fling"
		}
		from, err := d.From.offset()
		if err != nil {
			return "", fmt.Errorf("%s.from: %w", name, err)
		}
		by, err := d.By.offset()
		if err != nil {
			return "", fmt.Errorf("%s.by: %w", name, err)
		}
		if name == "fling" {
			t.Fling(from, by, d.Velocity)
			return fmt.Sprintf("fling %+g at %g/s", by.X, d.Velocity), nil
		}
		t.DragFrom(from, by)
		return fmt.Sprintf("drag %+g", by.X), nil

	case step.Pointer != nil:
		at, err := step.Pointer.At.offset()
		if err != nil {
			return "", fmt.Errorf("pointer.at: %w", err)
		}
		phase, err := parsePhase(step.Pointer.Phase)
		if err != nil {
			return "", err
		}
		c.HandlePointer(gestures.PointerEvent{
			PointerID: step.Pointer.ID,
			Position:  at,
			Phase:     phase,
			Time:      t.Clock().Now(),
		})
		return fmt.Sprintf("pointer %d %s %g,%g", step.Pointer.ID, phase, at.X, at.Y), nil

	case step.Expect != "":
		if got := c.State().String(); got != strings.ToLower(step.Expect) {
			return "", fmt.Errorf("expected state %s, got %s", step.Expect, got)
		}
		return "expect " + step.Expect, nil
	}
	return "", fmt.Errorf("empty step")
}

func parsePhase(s string) (gestures.PointerPhase, error) {
	for _, p := range []gestures.PointerPhase{
		gestures.PointerPhaseDown,
		gestures.PointerPhaseMove,
		gestures.PointerPhaseUp,
		gestures.PointerPhaseCancel,
	} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("pointer.phase: unknown phase %q", s)
}
