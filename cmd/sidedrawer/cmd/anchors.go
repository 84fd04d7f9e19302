package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/go-drift/sidedrawer/cmd/sidedrawer/internal/config"
	"github.com/go-drift/sidedrawer/pkg/drawer"
)

// cellWidth is how many logical pixels one terminal column stands for.
const cellWidth = 10.0

// fallbackColumns is used when stdout is not a terminal.
const fallbackColumns = 80

func init() {
	RegisterCommand(&Command{
		Name:  "anchors",
		Short: "Print the hidden and revealed positions",
		Long: `Print the side pane's two resting positions for a container.

Positions are the x coordinate of the side pane's trailing edge in logical
pixels. Without --width the container is the current terminal, at 10 pixels
per column. Side width and direction default to sidedrawer.yaml when present.`,
		Usage: "sidedrawer anchors [--config DIR] [--width N] [--side N] [--rtl]",
		Run:   runAnchors,
	})
}

type anchorsOptions struct {
	configDir string
	width     float64
	side      float64
	rtl       bool
}

func parseAnchorsArgs(args []string) (anchorsOptions, error) {
	opts := anchorsOptions{configDir: "."}
	for i := 0; i < len(args); i++ {
		name, _, _ := strings.Cut(args[i], "=")
		switch name {
		case "--rtl":
			opts.rtl = true
		case "--config":
			v, n, err := flagValue(args, i, name)
			if err != nil {
				return opts, err
			}
			opts.configDir = v
			i += n
		case "--width", "--side":
			v, n, err := flagValue(args, i, name)
			if err != nil {
				return opts, err
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return opts, fmt.Errorf("%s: %w", name, err)
			}
			if name == "--width" {
				opts.width = f
			} else {
				opts.side = f
			}
			i += n
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	return opts, nil
}

func runAnchors(args []string) error {
	opts, err := parseAnchorsArgs(args)
	if err != nil {
		return err
	}
	resolved, err := config.Load(opts.configDir)
	if err != nil {
		return err
	}

	geometry := drawer.GeometryConfig{
		ContainerWidth: opts.width,
		SideWidth:      resolved.SideWidth,
		Direction:      resolved.Direction,
	}
	if opts.side != 0 {
		geometry.SideWidth = opts.side
	}
	if opts.rtl {
		geometry.Direction = drawer.RightToLeft
	}
	if geometry.ContainerWidth == 0 {
		geometry.ContainerWidth = terminalColumns() * cellWidth
	}
	if err := geometry.Validate(); err != nil {
		return err
	}

	a := drawer.Resolve(geometry)
	fmt.Fprintf(stdout, "direction  %s\n", geometry.Direction)
	fmt.Fprintf(stdout, "container  %g\n", geometry.ContainerWidth)
	fmt.Fprintf(stdout, "side       %g\n", geometry.SideWidth)
	fmt.Fprintf(stdout, "hidden     %g\n", a.Hidden)
	fmt.Fprintf(stdout, "revealed   %g\n", a.Revealed)
	return nil
}

func terminalColumns() float64 {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackColumns
	}
	cols, _, err := term.GetSize(fd)
	if err != nil || cols <= 0 {
		logger.Debug("terminal size unavailable", "error", err)
		return fallbackColumns
	}
	return float64(cols)
}
