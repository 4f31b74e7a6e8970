package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/vfsim/internal/shell"
	"github.com/vvka-141/vfsim/pkg/vfsim"
)

// RunShell runs the interactive shell until the user leaves it.
func RunShell(ctx context.Context, session *shell.Session, logger vfsim.Logger, opts ShellOptions) error {
	model := NewShellModel(session, logger, opts)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive shell: %w", err)
	}
	if m, ok := final.(ShellModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
