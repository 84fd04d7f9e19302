package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// Run starts the demo and, when watchDir is set, a config watcher. It
// returns once the program exits.
func Run(ctx context.Context, opts Options, watchDir string) error {
	m, err := New(opts)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})
	if watchDir != "" {
		g.Go(func() error {
			return Watch(gctx, watchDir, p.Send)
		})
	}
	return g.Wait()
}
