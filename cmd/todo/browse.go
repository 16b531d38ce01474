package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/metalagman/todo/internal/tui"
	"github.com/spf13/cobra"
)

func browseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse, tick and remove tasks interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model := tui.New(a.store, a.store.Path(), a.renderOptions())
			p := tea.NewProgram(model,
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen(),
			)
			_, err := p.Run()
			return err
		},
	}
}
