package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/libx/internal/ui"
	"github.com/urfave/cli/v3"
)

// tuiCommand launches the interactive library browser.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "browse",
		Usage:  "Browse the library interactively",
		Action: r.Browse,
	}
}

// Browse runs the terminal UI over the shared library instance.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	program := tea.NewProgram(ui.NewModel(r.lib), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
