package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/go-drift/sidedrawer/cmd/sidedrawer/internal/config"
	"github.com/go-drift/sidedrawer/cmd/sidedrawer/internal/tui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Drag a drawer around the terminal",
		Long: `Run an interactive drawer in the terminal.

Drag with the mouse to reveal the side pane, click the front pane to dismiss
it, or use the keyboard: s shows the side pane, f shows the front pane,
space toggles, p toggles dragging, d flips the layout direction, q quits.

With --watch, edits to sidedrawer.yaml in the config directory restyle the
drawer while it runs.`,
		Usage: "sidedrawer demo [--config DIR] [--watch] [--rtl]",
		Run:   runDemo,
	})
}

type demoOptions struct {
	configDir string
	watch     bool
	rtl       bool
}

func parseDemoArgs(args []string) (demoOptions, error) {
	opts := demoOptions{configDir: "."}
	for i := 0; i < len(args); i++ {
		name, _, _ := strings.Cut(args[i], "=")
		switch name {
		case "--watch":
			opts.watch = true
		case "--rtl":
			opts.rtl = true
		case "--config":
			v, n, err := flagValue(args, i, name)
			if err != nil {
				return opts, err
			}
			opts.configDir = v
			i += n
		default:
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	return opts, nil
}

func runDemo(args []string) error {
	opts, err := parseDemoArgs(args)
	if err != nil {
		return err
	}
	resolved, err := config.Load(opts.configDir)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	watchDir := ""
	if opts.watch {
		watchDir = opts.configDir
	}
	return tui.Run(ctx, tui.Options{Config: resolved, RTL: opts.rtl, Logger: logger}, watchDir)
}
