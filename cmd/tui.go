package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/khrees2412/autodoc/internal/app"
	"github.com/khrees2412/autodoc/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive TUI",
	Long:  "Launch the interactive terminal user interface for filling in and generating documents",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := app.Require(cmd.Context())
	if err != nil {
		return err
	}

	model := tui.NewApp(cmd.Context(), a.UIDeps())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
