package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the Bubble Tea program and blocks until quit.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		// A canceled context is a normal shutdown, not a failure.
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
