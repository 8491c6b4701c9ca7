package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"smartrename/internal/analysis"
	"smartrename/internal/config"
	"smartrename/internal/log"
	"smartrename/internal/rename"
	"smartrename/internal/watch"
)

// Run starts the interactive preview for req and blocks until the user quits.
// When watching is on, changes to the directory mark the preview stale.
func Run(req rename.PlanRequest, cfg *config.Config, watching bool) error {
	renamer := rename.CurrentRenamerFactory()
	renamer.SetConfig(cfg)

	opts := []Option{
		WithRenamer(renamer),
		WithInspector(analysis.NewWithConfig(cfg)),
	}

	if watching {
		w, err := watch.New(req.Directory)
		if err != nil {
			log.Warnf("Not watching %s: %v", req.Directory, err)
		} else if err := w.Start(); err != nil {
			log.Warnf("Not watching %s: %v", req.Directory, err)
		} else {
			defer w.Stop()
			opts = append(opts, WithChanges(w.Changes()))
		}
	}

	p := tea.NewProgram(New(req, opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
